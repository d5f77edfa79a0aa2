package events

import (
	"testing"
	"time"
)

func TestGroupByDay_TwoDistinctDates(t *testing.T) {
	d1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	items := []MedicalEvent{
		{ID: "e1", PetID: "pet-1", Date: d1},
		{ID: "e2", PetID: "pet-1", Date: d2},
		{ID: "e3", PetID: "pet-2", Date: d1},
	}

	groups := GroupByDay(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(groups))
	}

	day1 := groups["2024-05-01"]
	if len(day1) != 2 || day1[0].ID != "e1" || day1[1].ID != "e3" {
		t.Fatalf("expected insertion order within day, got %+v", day1)
	}
	if len(groups["2024-05-03"]) != 1 || groups["2024-05-03"][0].ID != "e2" {
		t.Fatalf("unexpected second group: %+v", groups["2024-05-03"])
	}
}

func TestGroupByDay_Idempotent(t *testing.T) {
	items := []MedicalEvent{
		{ID: "e1", Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}

	a := GroupByDay(items)
	b := GroupByDay(items)
	if len(a) != len(b) || len(a["2024-05-01"]) != len(b["2024-05-01"]) {
		t.Fatalf("expected identical grouping on repeated calls")
	}

	// containers frescos: mutar uno no toca el otro
	a["2024-05-01"][0].ID = "mutated"
	if b["2024-05-01"][0].ID == "mutated" {
		t.Fatalf("expected fresh containers per call")
	}
}

func TestGroupByPet_UnknownBucket(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []MedicalEvent{
		{ID: "e1", PetID: "pet-1", Date: d},
		{ID: "e2", PetID: "", Date: d},
		{ID: "e3", PetID: "pet-1", Date: d},
	}

	groups := GroupByPet(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups["pet-1"]) != 2 {
		t.Fatalf("expected 2 events for pet-1, got %d", len(groups["pet-1"]))
	}
	if len(groups[UnknownPetID]) != 1 || groups[UnknownPetID][0].ID != "e2" {
		t.Fatalf("expected orphan event in %q bucket, got %+v", UnknownPetID, groups[UnknownPetID])
	}
}
