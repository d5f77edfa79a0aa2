package events

import (
	"testing"
	"time"
)

func evt(id, petID string, typ EventType, status EventStatus, date time.Time) MedicalEvent {
	return MedicalEvent{ID: id, PetID: petID, Type: typ, Status: status, Date: date}
}

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	e := evt("e1", "pet-1", EventTypeConsultation, EventStatusScheduled,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	if !(Filter{}).Matches(e) {
		t.Fatalf("empty filter should match")
	}
	if !(Filter{Type: FilterAll, PetID: FilterAll, Status: FilterAll}).Matches(e) {
		t.Fatalf("\"todos\" filter should match")
	}
}

func TestFilter_ExactMatchPerField(t *testing.T) {
	e := evt("e1", "pet-1", EventTypeVaccination, EventStatusDone,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"type match", Filter{Type: "vacinacao"}, true},
		{"type mismatch", Filter{Type: "consulta"}, false},
		{"type case-sensitive", Filter{Type: "Vacinacao"}, false},
		{"pet match", Filter{PetID: "pet-1"}, true},
		{"pet mismatch", Filter{PetID: "pet-2"}, false},
		{"status match", Filter{Status: "realizado"}, true},
		{"status mismatch", Filter{Status: "agendado"}, false},
		{"combined", Filter{Type: "vacinacao", PetID: "pet-1", Status: "realizado"}, true},
		{"combined one off", Filter{Type: "vacinacao", PetID: "pet-2", Status: "realizado"}, false},
	}

	for _, c := range cases {
		if got := c.f.Matches(e); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestFilter_OnDate_IgnoresTimeOfDay(t *testing.T) {
	// el evento guarda la fecha con hora 23:30: el match es por día civil
	e := evt("e1", "pet-1", EventTypeConsultation, EventStatusScheduled,
		time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC))
	e.TimeOfDay = "23:30"

	if !(Filter{OnDate: "2024-05-01"}).Matches(e) {
		t.Fatalf("expected match regardless of time-of-day")
	}
	if (Filter{OnDate: "2024-05-02"}).Matches(e) {
		t.Fatalf("expected no match for another day")
	}
}

func TestFilter_OnDate_MalformedFailsClosed(t *testing.T) {
	e := evt("e1", "pet-1", EventTypeConsultation, EventStatusScheduled,
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	for _, bad := range []string{"01/05/2024", "2024-5-1", "ayer", "2024-13-40"} {
		if (Filter{OnDate: bad}).Matches(e) {
			t.Fatalf("malformed OnDate %q should match nothing", bad)
		}
	}
}

func TestApply_PreservesOrderAndAllocatesFresh(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []MedicalEvent{
		evt("e1", "pet-1", EventTypeConsultation, EventStatusScheduled, d),
		evt("e2", "pet-2", EventTypeConsultation, EventStatusScheduled, d),
		evt("e3", "pet-1", EventTypeExam, EventStatusScheduled, d),
	}

	out := Apply(items, Filter{PetID: "pet-1"})
	if len(out) != 2 || out[0].ID != "e1" || out[1].ID != "e3" {
		t.Fatalf("unexpected result: %+v", out)
	}

	// idempotente sobre la misma entrada
	out2 := Apply(items, Filter{PetID: "pet-1"})
	if len(out2) != 2 || out2[0].ID != "e1" || out2[1].ID != "e3" {
		t.Fatalf("expected identical result on repeat, got %+v", out2)
	}
}

func TestParseEventType_RejectsUnknown(t *testing.T) {
	if _, err := ParseEventType("banho"); err != ErrUnknownEnum {
		t.Fatalf("expected ErrUnknownEnum, got %v", err)
	}
	if typ, err := ParseEventType("consulta"); err != nil || typ != EventTypeConsultation {
		t.Fatalf("expected consulta, got %v %v", typ, err)
	}
}

func TestParseEventStatus_RejectsUnknown(t *testing.T) {
	if _, err := ParseEventStatus("pendiente"); err != ErrUnknownEnum {
		t.Fatalf("expected ErrUnknownEnum, got %v", err)
	}
	if st, err := ParseEventStatus("cancelado"); err != nil || st != EventStatusCancelled {
		t.Fatalf("expected cancelado, got %v %v", st, err)
	}
}
