package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/weights"
)

type weightRepo struct {
	mu      sync.RWMutex
	samples []weights.WeightSample
}

func NewWeightRepo() weights.Repository {
	return &weightRepo{}
}

func (r *weightRepo) Create(ctx context.Context, s weights.WeightSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("weight sample id required")
	}
	r.samples = append(r.samples, s)
	return nil
}

func (r *weightRepo) ListByPet(ctx context.Context, petID string) ([]weights.WeightSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]weights.WeightSample, 0)
	for _, s := range r.samples {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].WeighedAt.Equal(out[j].WeighedAt) {
			return out[i].WeighedAt.Before(out[j].WeighedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *weightRepo) LatestByPet(ctx context.Context, petID string) (weights.WeightSample, error) {
	all, _ := r.ListByPet(ctx, petID)
	if len(all) == 0 {
		return weights.WeightSample{}, ErrNotFound
	}
	return all[len(all)-1], nil
}
