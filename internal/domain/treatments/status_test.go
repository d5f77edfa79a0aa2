package treatments

import (
	"testing"
	"time"
)

func activeTreatment(start time.Time, duration int) Treatment {
	return Treatment{
		ID:           "t1",
		PetID:        "pet-1",
		Name:         "Antibiótico",
		StartDate:    start,
		DurationDays: duration,
		Status:       StatusActive,
	}
}

func TestDeriveStatus_OverdueAfterPeriod(t *testing.T) {
	tr := activeTreatment(day(2024, 1, 1), 10)

	p, err := DeriveStatus(tr, day(2024, 1, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Phase != PhaseOverdue || p.Percent != 100 {
		t.Fatalf("expected atrasado/100, got %+v", p)
	}
}

func TestDeriveStatus_OngoingHalfway(t *testing.T) {
	tr := activeTreatment(day(2024, 1, 1), 10)

	p, err := DeriveStatus(tr, day(2024, 1, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Phase != PhaseOngoing || p.Percent != 50 {
		t.Fatalf("expected em_andamento/50, got %+v", p)
	}
}

func TestDeriveStatus_NotStartedBeforePeriod(t *testing.T) {
	tr := activeTreatment(day(2024, 2, 10), 5)

	p, err := DeriveStatus(tr, day(2024, 2, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Phase != PhaseNotStarted || p.Percent != 0 {
		t.Fatalf("expected a_iniciar/0, got %+v", p)
	}
}

func TestDeriveStatus_CompletedWinsOverCalendar(t *testing.T) {
	tr := activeTreatment(day(2024, 2, 10), 5)
	tr.Status = StatusCompleted

	// aunque el calendario diga "aún no empezó", concluido manda
	p, err := DeriveStatus(tr, day(2024, 2, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Phase != PhaseCompleted || p.Percent != 100 {
		t.Fatalf("expected concluido/100, got %+v", p)
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	tr := activeTreatment(day(2024, 1, 1), 10)
	today := day(2024, 1, 7)

	a, errA := DeriveStatus(tr, today)
	b, errB := DeriveStatus(tr, today)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if a != b {
		t.Fatalf("expected identical result on repeat, got %+v vs %+v", a, b)
	}
}

func TestDeriveStatus_PropagatesInvalidDuration(t *testing.T) {
	tr := activeTreatment(day(2024, 1, 1), 0)

	if _, err := DeriveStatus(tr, day(2024, 1, 2)); err != ErrInvalidDuration {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}
