package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	Sex       string
	AgeYears  *int
	BirthDate *time.Time
	WeightKg  *float64
	Neutered  bool
	Microchip string
	Allergies string
	Notes     string
	PhotoURL  string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !validSex(strings.TrimSpace(in.Sex)) {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears != nil && *in.AgeYears < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         strings.TrimSpace(in.Sex),
		AgeYears:    in.AgeYears,
		BirthDate:   in.BirthDate,
		WeightKg:    in.WeightKg,
		Neutered:    in.Neutered,
		Microchip:   strings.TrimSpace(in.Microchip),
		Allergies:   strings.TrimSpace(in.Allergies),
		Notes:       strings.TrimSpace(in.Notes),
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Today expone el "hoy" del servicio en UTC. Las derivaciones de edad y
// stats en los handlers usan este reloj, no el del sistema.
func (s *Service) Today() time.Time {
	return s.now().UTC()
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// PatchField distingue "campo ausente" de "campo enviado como null",
// para los campos limpiables del PATCH (idade, data_nascimento, peso).
type PatchField[T any] struct {
	Present bool
	Value   *T
}

type UpdateProfileInput struct {
	Name      *string
	Species   *string
	Breed     *string
	Sex       *string
	Microchip *string
	Allergies *string
	Notes     *string
	PhotoURL  *string
	Neutered  *bool

	AgeYears  PatchField[int]
	BirthDate PatchField[time.Time]
	WeightKg  PatchField[float64]
}

// UpdateProfile aplica un PATCH real: nil = no tocar, Present+nil = limpiar.
func (s *Service) UpdateProfile(ctx context.Context, petID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if strings.TrimSpace(*in.Species) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		sex := strings.TrimSpace(*in.Sex)
		if !validSex(sex) {
			return Pet{}, ErrInvalidInput
		}
		p.Sex = sex
	}
	if in.Microchip != nil {
		p.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Allergies != nil {
		p.Allergies = strings.TrimSpace(*in.Allergies)
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.PhotoURL != nil {
		p.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if in.Neutered != nil {
		p.Neutered = *in.Neutered
	}
	if in.AgeYears.Present {
		if in.AgeYears.Value != nil && *in.AgeYears.Value < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.AgeYears = in.AgeYears.Value
	}
	if in.BirthDate.Present {
		p.BirthDate = in.BirthDate.Value
	}
	if in.WeightKg.Present {
		p.WeightKg = in.WeightKg.Value
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
