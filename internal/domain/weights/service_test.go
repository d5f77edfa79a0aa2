package weights

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type testRepo struct {
	samples []WeightSample
}

func (r *testRepo) Create(ctx context.Context, s WeightSample) error {
	r.samples = append(r.samples, s)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]WeightSample, error) {
	out := make([]WeightSample, 0)
	for _, s := range r.samples {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeighedAt.Before(out[j].WeighedAt) })
	return out, nil
}

func (r *testRepo) LatestByPet(ctx context.Context, petID string) (WeightSample, error) {
	all, _ := r.ListByPet(ctx, petID)
	if len(all) == 0 {
		return WeightSample{}, errors.New("repo: not found")
	}
	return all[len(all)-1], nil
}

func TestService_Record_Validates(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Record(ctx, "", RecordInput{WeighedAt: when, WeightKg: 4.2}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without pet, got %v", err)
	}
	if _, err := svc.Record(ctx, "pet-1", RecordInput{WeightKg: 4.2}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without date, got %v", err)
	}
	if _, err := svc.Record(ctx, "pet-1", RecordInput{WeighedAt: when, WeightKg: 0}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for non-positive weight, got %v", err)
	}
}

func TestService_Record_NormalizesToCivilDay(t *testing.T) {
	svc := NewService(&testRepo{})

	sample, err := svc.Record(context.Background(), "pet-1", RecordInput{
		WeighedAt: time.Date(2024, 5, 1, 22, 15, 0, 0, time.UTC),
		WeightKg:  4.2,
	})
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if sample.WeighedAt != time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("expected midnight UTC, got %v", sample.WeighedAt)
	}
}

func TestService_HistoryAndLatest(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	for _, d := range []int{1, 15, 8} {
		if _, err := svc.Record(ctx, "pet-1", RecordInput{
			WeighedAt: time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC),
			WeightKg:  4.0 + float64(d)/100,
		}); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	history, err := svc.History(ctx, "pet-1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != 3 || !history[0].WeighedAt.Before(history[2].WeighedAt) {
		t.Fatalf("expected 3 samples in chronological order, got %+v", history)
	}

	latest, err := svc.Latest(ctx, "pet-1")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if latest.WeightKg != 4.15 {
		t.Fatalf("expected latest 4.15, got %v", latest.WeightKg)
	}

	if _, err := svc.Latest(ctx, "pet-2"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for empty history, got %v", err)
	}
}
