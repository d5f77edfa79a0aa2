package pets

import "time"

// Pet representa el perfil de una mascota registrada por su tutor.
// Nunca se borra en los flujos actuales; solo se crea y actualiza.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string // nome
	Species string // tipo_animal (cachorro, gato, ...)
	Breed   string // raca
	Sex     string // sexo

	// Edad: idade numérica y data_nascimento conviven como dos fuentes
	// de verdad heredadas del backend original. La numérica gana.
	AgeYears  *int
	BirthDate *time.Time

	WeightKg  *float64 // peso
	Neutered  bool     // castrado
	Microchip string
	Allergies string // alergias
	Notes     string // observacoes
	PhotoURL  string // foto_url

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sexos aceptados en el borde. Enumeración cerrada, igual que tipo y
// status de eventos; vacío significa no informado.
const (
	SexMale    = "macho"
	SexFemale  = "femea"
	SexUnknown = "desconhecido"
)

func validSex(s string) bool {
	switch s {
	case "", SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}
