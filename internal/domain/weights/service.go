package weights

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("weights: invalid input")
	ErrNotFound     = errors.New("weights: not found")
)

type Service struct {
	repo Repository

	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	WeighedAt time.Time
	WeightKg  float64
}

// Record agrega una pesada al historial. No hay update ni delete.
func (s *Service) Record(ctx context.Context, petID string, in RecordInput) (WeightSample, error) {
	if strings.TrimSpace(petID) == "" {
		return WeightSample{}, ErrInvalidInput
	}
	if in.WeighedAt.IsZero() || in.WeightKg <= 0 {
		return WeightSample{}, ErrInvalidInput
	}

	sample := WeightSample{
		ID:        uuid.NewString(),
		PetID:     petID,
		WeighedAt: dates.StartOfDay(in.WeighedAt),
		WeightKg:  in.WeightKg,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, sample); err != nil {
		return WeightSample{}, err
	}
	return sample, nil
}

func (s *Service) History(ctx context.Context, petID string) ([]WeightSample, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Latest(ctx context.Context, petID string) (WeightSample, error) {
	sample, err := s.repo.LatestByPet(ctx, petID)
	if err != nil {
		return WeightSample{}, ErrNotFound
	}
	return sample, nil
}
