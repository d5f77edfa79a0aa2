package treatments

import (
	"math"
	"time"
)

// Phase es la fase derivada de un tratamiento respecto al calendario.
type Phase string

const (
	PhaseCompleted  Phase = "concluido"
	PhaseNotStarted Phase = "a_iniciar"
	PhaseOverdue    Phase = "atrasado"
	PhaseOngoing    Phase = "em_andamento"
)

// Progress es la fase más el porcentaje de avance que muestra la barra
// de la UI. Se deriva siempre en el momento de la lectura, nunca se
// persiste.
type Progress struct {
	Phase   Phase `json:"fase"`
	Percent int   `json:"percentual"`
}

// DeriveStatus resuelve la fase de un tratamiento. El orden de los
// desempates es fijo:
//
//  1. marcado concluido por el tutor -> concluido, 100
//  2. antes del inicio              -> a_iniciar, 0
//  3. después del fin               -> atrasado, 100
//  4. en curso                      -> em_andamento, round(fracción*100)
//
// Es una función pura de (tratamiento, hoy): llamarla dos veces con los
// mismos argumentos da el mismo resultado.
func DeriveStatus(t Treatment, today time.Time) (Progress, error) {
	if t.Status == StatusCompleted {
		return Progress{Phase: PhaseCompleted, Percent: 100}, nil
	}

	w, err := ComputeWindow(t.StartDate, t.DurationDays, today)
	if err != nil {
		return Progress{}, err
	}

	switch {
	case w.IsBeforeStart:
		return Progress{Phase: PhaseNotStarted, Percent: 0}, nil
	case w.IsAfterEnd:
		return Progress{Phase: PhaseOverdue, Percent: 100}, nil
	default:
		return Progress{
			Phase:   PhaseOngoing,
			Percent: int(math.Round(w.FractionComplete * 100)),
		}, nil
	}
}
