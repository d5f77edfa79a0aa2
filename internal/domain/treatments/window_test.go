package treatments

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWindow_RejectsNonPositiveDuration(t *testing.T) {
	start := day(2024, 1, 1)
	for _, dur := range []int{0, -3} {
		if _, err := ComputeWindow(start, dur, day(2024, 1, 5)); err != ErrInvalidDuration {
			t.Fatalf("duration %d: expected ErrInvalidDuration, got %v", dur, err)
		}
	}
}

func TestComputeWindow_Boundaries(t *testing.T) {
	start := day(2024, 1, 1)

	cases := []struct {
		name        string
		today       time.Time
		elapsed     int
		dayIndex    int
		fraction    float64
		beforeStart bool
		afterEnd    bool
	}{
		{"day before start", day(2023, 12, 31), -1, 0, 0, true, false},
		{"start day", day(2024, 1, 1), 0, 1, 0.1, false, false},
		{"halfway", day(2024, 1, 5), 4, 5, 0.5, false, false},
		{"last treated day", day(2024, 1, 10), 9, 10, 1.0, false, false},
		{"first day past end", day(2024, 1, 11), 10, 11, 1.0, false, true},
	}

	for _, c := range cases {
		w, err := ComputeWindow(start, 10, c.today)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if w.ElapsedDays != c.elapsed || w.DayIndex != c.dayIndex {
			t.Fatalf("%s: got elapsed=%d dayIndex=%d", c.name, w.ElapsedDays, w.DayIndex)
		}
		if w.FractionComplete != c.fraction {
			t.Fatalf("%s: got fraction=%v, want %v", c.name, w.FractionComplete, c.fraction)
		}
		if w.IsBeforeStart != c.beforeStart || w.IsAfterEnd != c.afterEnd {
			t.Fatalf("%s: got beforeStart=%v afterEnd=%v", c.name, w.IsBeforeStart, w.IsAfterEnd)
		}
	}
}

func TestComputeWindow_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 18, 45, 0, 0, time.UTC)
	today := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

	w, err := ComputeWindow(start, 7, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ElapsedDays != 0 || w.DayIndex != 1 {
		t.Fatalf("expected day 1 regardless of hours, got %+v", w)
	}
}

func TestComputeWindow_FractionMonotonicWithinPeriod(t *testing.T) {
	start := day(2024, 3, 1)
	prev := -1.0
	for i := 0; i < 14; i++ {
		w, err := ComputeWindow(start, 14, start.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("day %d: unexpected error: %v", i, err)
		}
		if w.FractionComplete <= prev {
			t.Fatalf("day %d: fraction %v not increasing (prev %v)", i, w.FractionComplete, prev)
		}
		prev = w.FractionComplete
	}
	if prev != 1.0 {
		t.Fatalf("expected fraction to reach 1.0 on the last day, got %v", prev)
	}
}
