package events

import "context"

type Repository interface {
	Create(ctx context.Context, e MedicalEvent) error
	GetByID(ctx context.Context, id string) (MedicalEvent, error)
	Update(ctx context.Context, e MedicalEvent) error
	Delete(ctx context.Context, id string) error

	// ListByPet devuelve los eventos del pet ordenados por data asc,
	// created_at asc como desempate.
	ListByPet(ctx context.Context, petID string) ([]MedicalEvent, error)

	// ListByPets es la variante para vistas cross-pet (calendario del
	// tutor), mismo orden.
	ListByPets(ctx context.Context, petIDs []string) ([]MedicalEvent, error)
}
