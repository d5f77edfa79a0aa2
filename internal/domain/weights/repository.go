package weights

import "context"

// Repository persiste el historial de peso. ListByPet devuelve
// data_pesagem asc, created_at asc; LatestByPet la pesada más reciente.
type Repository interface {
	Create(ctx context.Context, s WeightSample) error
	ListByPet(ctx context.Context, petID string) ([]WeightSample, error)
	LatestByPet(ctx context.Context, petID string) (WeightSample, error)
}
