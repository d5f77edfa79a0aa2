package events

import (
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"
)

// FilterAll es el sentinel "todos" que manda la UI original en los selects.
// Equivale a campo ausente.
const FilterAll = "todos"

// Filter combina predicados sobre tipo, pet, status y día calendario.
// Campo vacío (o "todos") siempre pasa; campo presente exige igualdad
// exacta, case-sensitive.
type Filter struct {
	Type   string
	PetID  string
	Status string

	// OnDate compara por día civil canónico YYYY-MM-DD, ignorando la
	// hora del evento. Un valor malformado no matchea nada (fail-closed):
	// nunca filtramos "de más" cruzando eventos entre pets.
	OnDate string
}

// Matches evalúa el filtro contra un evento. Puro, sin errores:
// la ausencia de match es un resultado normal.
func (f Filter) Matches(e MedicalEvent) bool {
	if !wildcard(f.Type) && f.Type != string(e.Type) {
		return false
	}
	if !wildcard(f.PetID) && f.PetID != e.PetID {
		return false
	}
	if !wildcard(f.Status) && f.Status != string(e.Status) {
		return false
	}
	if !wildcard(f.OnDate) {
		if _, err := dates.ParseCanonical(f.OnDate); err != nil {
			return false
		}
		if dates.Canonical(e.Date) != f.OnDate {
			return false
		}
	}
	return true
}

// Apply devuelve los eventos que pasan el filtro, en el orden de entrada,
// siempre en un slice nuevo.
func Apply(items []MedicalEvent, f Filter) []MedicalEvent {
	out := make([]MedicalEvent, 0, len(items))
	for _, e := range items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}
