package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/events"
)

type eventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.MedicalEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.MedicalEvent),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.MedicalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) Update(ctx context.Context, e events.MedicalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.MedicalEvent{}, ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) ListByPet(ctx context.Context, petID string) ([]events.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.MedicalEvent, 0)
	for _, e := range r.byID {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out, nil
}

func (r *eventRepo) ListByPets(ctx context.Context, petIDs []string) ([]events.MedicalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[string]bool, len(petIDs))
	for _, id := range petIDs {
		want[id] = true
	}

	out := make([]events.MedicalEvent, 0)
	for _, e := range r.byID {
		if want[e.PetID] {
			out = append(out, e)
		}
	}
	sortEvents(out)
	return out, nil
}

// data asc, created_at asc: mismo orden que el repo de Postgres
func sortEvents(out []events.MedicalEvent) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
