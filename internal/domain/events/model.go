package events

import "time"

// MedicalEvent es un evento clínico de la agenda del pet (consulta,
// vacuna, examen...). Date es fecha civil pura: la hora va aparte en
// TimeOfDay como texto opcional "HH:MM".
type MedicalEvent struct {
	ID    string
	PetID string

	Type   EventType
	Status EventStatus

	Title       string // titulo
	Description string // descricao

	Date      time.Time // data (solo día, normalizada a medianoche UTC)
	TimeOfDay string    // hora, opcional

	Veterinarian string // veterinario
	Clinic       string // clinica

	Price    *float64 // preco
	Notes    string   // observacoes
	Reminder bool     // lembrete

	CreatedAt time.Time
}
