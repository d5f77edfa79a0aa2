package pets

import (
	"fmt"
	"time"
)

// AgeUnknown es el texto que se muestra cuando el pet no tiene ni idade
// numérica ni data_nascimento.
const AgeUnknown = "Não informado"

// DisplayAge deriva la edad a mostrar para el pet.
// - idade numérica presente => "<N> anos" (gana siempre sobre la fecha)
// - data_nascimento presente => "<anos> anos e <meses> meses"
// - ninguna => AgeUnknown
// Nunca falla: todas las ramas devuelven un string definido.
// today se inyecta para mantener el resultado reproducible.
func DisplayAge(p Pet, today time.Time) string {
	if p.AgeYears != nil {
		return fmt.Sprintf("%d anos", *p.AgeYears)
	}
	if p.BirthDate == nil {
		return AgeUnknown
	}
	years, months := ageParts(*p.BirthDate, today)
	return fmt.Sprintf("%d anos e %d meses", years, months)
}

// ageParts calcula años y meses cumplidos con resta calendario.
// Si el día del mes de hoy es anterior al día de nacimiento, ese mes
// todavía no se cumplió; si los meses quedan negativos, se presta un año.
func ageParts(birth, today time.Time) (years, months int) {
	years = today.Year() - birth.Year()
	months = int(today.Month()) - int(birth.Month())
	if today.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months
}

// DerivedAgeYears devuelve los años cumplidos usando la misma precedencia
// que DisplayAge, como número (para promedios del dashboard).
func DerivedAgeYears(p Pet, today time.Time) int {
	if p.AgeYears != nil {
		return *p.AgeYears
	}
	if p.BirthDate == nil {
		return 0
	}
	years, _ := ageParts(*p.BirthDate, today)
	if years < 0 {
		return 0
	}
	return years
}
