package treatments

import (
	"errors"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"
)

// ErrInvalidDuration corta el cálculo antes de dividir por cero o por
// una duración negativa.
var ErrInvalidDuration = errors.New("treatments: duration must be positive days")

// Window es la posición de "hoy" dentro del periodo de un tratamiento.
// Todo se calcula en días civiles: la hora del día no influye.
type Window struct {
	// ElapsedDays es la cantidad de días completos desde el inicio.
	// Negativo si el tratamiento todavía no empezó.
	ElapsedDays int

	// DayIndex es el día de tratamiento corriente, contando desde 1
	// (el día de inicio es el día 1).
	DayIndex int

	// FractionComplete es DayIndex/duración, recortado a [0, 1].
	FractionComplete float64

	IsBeforeStart bool

	// IsAfterEnd es verdadero desde el primer día posterior al periodo:
	// con inicio D y duración N, el último día tratado es D+N-1.
	IsAfterEnd bool
}

// ComputeWindow posiciona today dentro del periodo [start, start+duration).
// start y today se normalizan a día civil antes de comparar.
func ComputeWindow(start time.Time, durationDays int, today time.Time) (Window, error) {
	if durationDays <= 0 {
		return Window{}, ErrInvalidDuration
	}

	elapsed := dates.DaysBetween(dates.StartOfDay(start), dates.StartOfDay(today))
	dayIndex := elapsed + 1

	fraction := float64(dayIndex) / float64(durationDays)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return Window{
		ElapsedDays:      elapsed,
		DayIndex:         dayIndex,
		FractionComplete: fraction,
		IsBeforeStart:    elapsed < 0,
		IsAfterEnd:       elapsed >= durationDays,
	}, nil
}
