package vets

import (
	"strings"
	"testing"
)

func TestDirectory_ReturnsCopy(t *testing.T) {
	a := Directory()
	if len(a) == 0 {
		t.Fatalf("expected a non-empty directory")
	}
	a[0].Name = "mutated"

	b := Directory()
	if b[0].Name == "mutated" {
		t.Fatalf("expected Directory to return a fresh copy")
	}
}

func TestClinic_MapsURL(t *testing.T) {
	c := Clinic{Lat: -7.994825, Lng: -34.839247}
	got := c.MapsURL()
	want := "https://www.google.com/maps/search/?api=1&query=-7.994825,-34.839247"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmergencyURL(t *testing.T) {
	got := EmergencyURL(-8.0, -34.842)
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, "/@-8,-34.842,13z") {
		t.Fatalf("unexpected suffix: %q", got)
	}
	if !strings.Contains(got, "hospital%20veterinario%2024h") {
		t.Fatalf("expected escaped query, got %q", got)
	}
}
