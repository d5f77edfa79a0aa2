package treatments

import "context"

// Repository es el contrato de persistencia de tratamientos.
// Los listados devuelven data_inicio asc, created_at asc.
type Repository interface {
	Create(ctx context.Context, t Treatment) error
	Update(ctx context.Context, t Treatment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Treatment, error)
	ListByPet(ctx context.Context, petID string) ([]Treatment, error)
	ListByPets(ctx context.Context, petIDs []string) ([]Treatment, error)
}
