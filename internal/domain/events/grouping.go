package events

import (
	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"
)

// UnknownPetID es el bucket reservado para registros sin pet asociado.
// Preferimos agruparlos ahí antes que perderlos en silencio.
const UnknownPetID = "desconhecido"

// GroupByDay agrupa eventos por día civil canónico (YYYY-MM-DD), para
// pintar los puntitos del grid mensual. El orden dentro de cada día es
// el orden de entrada; quien necesite orden cronológico ordena antes.
func GroupByDay(items []MedicalEvent) map[string][]MedicalEvent {
	out := make(map[string][]MedicalEvent, len(items))
	for _, e := range items {
		key := dates.Canonical(e.Date)
		out[key] = append(out[key], e)
	}
	return out
}

// GroupByPet agrupa eventos por pet. Eventos sin pet_id caen en
// UnknownPetID.
func GroupByPet(items []MedicalEvent) map[string][]MedicalEvent {
	out := make(map[string][]MedicalEvent, len(items))
	for _, e := range items {
		key := e.PetID
		if key == "" {
			key = UnknownPetID
		}
		out[key] = append(out[key], e)
	}
	return out
}
