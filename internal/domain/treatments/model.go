package treatments

import "time"

// TreatmentStatus es el estado administrativo que gestiona el tutor.
// No confundir con la fase derivada (Progress.Phase), que se calcula
// contra el calendario en cada lectura.
type TreatmentStatus string

const (
	StatusActive    TreatmentStatus = "ativo"
	StatusCompleted TreatmentStatus = "concluido"
)

// Treatment representa un medicamento en curso para una mascota.
type Treatment struct {
	ID    string
	PetID string

	Name         string   // nome_medicamento
	Dosage       string   // dosagem
	Schedule     []string // horarios HH:MM
	Instructions string

	StartDate    time.Time // día civil, medianoche UTC
	DurationDays int

	Status TreatmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
