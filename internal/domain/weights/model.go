package weights

import "time"

// WeightSample es una pesada puntual de la mascota. El historial es
// append-only: correcciones se registran como una pesada nueva.
type WeightSample struct {
	ID    string
	PetID string

	WeighedAt time.Time // día civil, medianoche UTC (data_pesagem)
	WeightKg  float64   // peso

	CreatedAt time.Time
}
