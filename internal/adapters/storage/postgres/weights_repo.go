package postgres

import (
	"context"
	"database/sql"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/weights"
)

type WeightsRepo struct {
	db *sql.DB
}

func NewWeightsRepo(db *sql.DB) *WeightsRepo {
	return &WeightsRepo{db: db}
}

func (r *WeightsRepo) Create(ctx context.Context, s weights.WeightSample) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pesos (id, pet_id, data_pesagem, peso, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		s.ID,
		s.PetID,
		s.WeighedAt,
		s.WeightKg,
		s.CreatedAt,
	)
	return err
}

func (r *WeightsRepo) ListByPet(ctx context.Context, petID string) ([]weights.WeightSample, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, data_pesagem, peso, created_at
		FROM pesos
		WHERE pet_id = $1
		ORDER BY data_pesagem ASC, created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]weights.WeightSample, 0)
	for rows.Next() {
		var s weights.WeightSample
		if err := rows.Scan(&s.ID, &s.PetID, &s.WeighedAt, &s.WeightKg, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *WeightsRepo) LatestByPet(ctx context.Context, petID string) (weights.WeightSample, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, data_pesagem, peso, created_at
		FROM pesos
		WHERE pet_id = $1
		ORDER BY data_pesagem DESC, created_at DESC
		LIMIT 1
	`, petID)

	var s weights.WeightSample
	if err := row.Scan(&s.ID, &s.PetID, &s.WeighedAt, &s.WeightKg, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return weights.WeightSample{}, ErrNotFound
		}
		return weights.WeightSample{}, err
	}
	return s, nil
}
