package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiresNameAndSpecies(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "tutor-1", CreateInput{Species: "gato"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "tutor-1", CreateInput{Name: "Mel"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without species, got %v", err)
	}
}

func TestService_Create_RejectsNegativeAge(t *testing.T) {
	svc := NewService(newTestRepo())

	bad := -1
	_, err := svc.Create(context.Background(), "tutor-1", CreateInput{
		Name: "Mel", Species: "gato", AgeYears: &bad,
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative age, got %v", err)
	}
}

func TestService_Create_RejectsUnknownSex(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "tutor-1", CreateInput{
		Name: "Mel", Species: "gato", Sex: "machoo",
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown sexo, got %v", err)
	}

	// vacío = no informado; los tres valores del enum pasan
	for _, sex := range []string{"", SexMale, SexFemale, SexUnknown} {
		if _, err := svc.Create(context.Background(), "tutor-1", CreateInput{
			Name: "Mel", Species: "gato", Sex: sex,
		}); err != nil {
			t.Fatalf("expected sexo %q accepted, got %v", sex, err)
		}
	}
}

func TestService_UpdateProfile_RejectsUnknownSex(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), "tutor-1", CreateInput{
		Name: "Mel", Species: "gato", Sex: SexFemale,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bad := "outro"
	if _, err := svc.UpdateProfile(context.Background(), p.ID, UpdateProfileInput{Sex: &bad}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown sexo, got %v", err)
	}
}

func TestService_UpdateProfile_ClearsNumericAge(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	age := 3
	p, err := svc.Create(context.Background(), "tutor-1", CreateInput{
		Name: "Thor", Species: "cachorro", AgeYears: &age,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Present=true con Value=nil => limpiar idade
	updated, err := svc.UpdateProfile(context.Background(), p.ID, UpdateProfileInput{
		AgeYears: PatchField[int]{Present: true},
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.AgeYears != nil {
		t.Fatalf("expected idade cleared, got %v", *updated.AgeYears)
	}
	if updated.UpdatedAt != now {
		t.Fatalf("expected UpdatedAt to be pinned now")
	}
}

func TestService_UpdateProfile_AbsentFieldsUntouched(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Create(context.Background(), "tutor-1", CreateInput{
		Name: "Thor", Species: "cachorro", Breed: "vira-lata",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "Thor Jr."
	updated, err := svc.UpdateProfile(context.Background(), p.ID, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.Name != "Thor Jr." || updated.Breed != "vira-lata" || updated.Species != "cachorro" {
		t.Fatalf("unexpected result: %+v", updated)
	}
}

func TestService_Today_UsesInjectedClockInUTC(t *testing.T) {
	svc := NewService(newTestRepo())

	recife := time.FixedZone("America/Recife", -3*60*60)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 22, 0, 0, 0, recife) }

	got := svc.Today()
	want := time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("expected %v in UTC, got %v", want, got)
	}
}

func TestComputeStats(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	age2, age4, age6 := 2, 4, 6

	st := ComputeStats([]Pet{
		{Species: "cachorro", AgeYears: &age2},
		{Species: "gato", AgeYears: &age4},
		{Species: "cachorro", AgeYears: &age6},
	}, today)

	if st.TotalPets != 3 {
		t.Fatalf("expected 3 pets, got %d", st.TotalPets)
	}
	if st.MostCommonSpecies != "cachorro" {
		t.Fatalf("expected cachorro, got %s", st.MostCommonSpecies)
	}
	if st.AverageAgeYears != 4.0 {
		t.Fatalf("expected average 4.0, got %v", st.AverageAgeYears)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil, time.Now())
	if st.TotalPets != 0 || st.MostCommonSpecies != "Nenhum" || st.AverageAgeYears != 0 {
		t.Fatalf("unexpected empty stats: %+v", st)
	}
}
