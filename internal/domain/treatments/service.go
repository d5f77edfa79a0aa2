package treatments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("treatments: invalid input")
	ErrNotFound     = errors.New("treatments: not found")
)

type Service struct {
	repo Repository

	// inyectable para pruebas deterministas
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Dosage       string
	Schedule     []string
	Instructions string
	StartDate    time.Time
	DurationDays int
}

// UpdateInput parchea campos del tratamiento. Puntero nil = sin cambios.
type UpdateInput struct {
	Name         *string
	Dosage       *string
	Schedule     *[]string
	Instructions *string
	StartDate    *time.Time
	DurationDays *int
}

// WithProgress empaqueta el tratamiento junto a su fase derivada "hoy".
type WithProgress struct {
	Treatment Treatment
	Progress  Progress
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Treatment, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(in.Name) == "" {
		return Treatment{}, ErrInvalidInput
	}
	if in.StartDate.IsZero() {
		return Treatment{}, ErrInvalidInput
	}
	if in.DurationDays <= 0 {
		return Treatment{}, ErrInvalidDuration
	}
	for _, h := range in.Schedule {
		if _, err := time.Parse("15:04", h); err != nil {
			return Treatment{}, ErrInvalidInput
		}
	}

	now := s.now().UTC()
	t := Treatment{
		ID:           uuid.NewString(),
		PetID:        petID,
		Name:         strings.TrimSpace(in.Name),
		Dosage:       strings.TrimSpace(in.Dosage),
		Schedule:     append([]string(nil), in.Schedule...),
		Instructions: in.Instructions,
		StartDate:    dates.StartOfDay(in.StartDate),
		DurationDays: in.DurationDays,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Treatment, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, ErrNotFound
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Treatment, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Treatment{}, ErrInvalidInput
		}
		t.Name = strings.TrimSpace(*in.Name)
	}
	if in.Dosage != nil {
		t.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Schedule != nil {
		for _, h := range *in.Schedule {
			if _, err := time.Parse("15:04", h); err != nil {
				return Treatment{}, ErrInvalidInput
			}
		}
		t.Schedule = append([]string(nil), (*in.Schedule)...)
	}
	if in.Instructions != nil {
		t.Instructions = *in.Instructions
	}
	if in.StartDate != nil {
		if in.StartDate.IsZero() {
			return Treatment{}, ErrInvalidInput
		}
		t.StartDate = dates.StartOfDay(*in.StartDate)
	}
	if in.DurationDays != nil {
		if *in.DurationDays <= 0 {
			return Treatment{}, ErrInvalidDuration
		}
		t.DurationDays = *in.DurationDays
	}

	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

// Complete marca el tratamiento como concluido por el tutor. A partir de
// ahí la fase derivada es siempre concluido/100, sin importar el calendario.
func (s *Service) Complete(ctx context.Context, id string) (Treatment, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, ErrNotFound
	}

	t.Status = StatusCompleted
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]WithProgress, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	return s.withProgress(items)
}

func (s *Service) ListByPets(ctx context.Context, petIDs []string) ([]WithProgress, error) {
	if len(petIDs) == 0 {
		return []WithProgress{}, nil
	}
	items, err := s.repo.ListByPets(ctx, petIDs)
	if err != nil {
		return nil, err
	}
	return s.withProgress(items)
}

// Derive calcula la fase del tratamiento con el reloj del servicio, para
// que los handlers no lean el reloj del sistema por su cuenta.
func (s *Service) Derive(t Treatment) (WithProgress, error) {
	p, err := DeriveStatus(t, s.now().UTC())
	if err != nil {
		return WithProgress{}, err
	}
	return WithProgress{Treatment: t, Progress: p}, nil
}

func (s *Service) withProgress(items []Treatment) ([]WithProgress, error) {
	today := s.now().UTC()
	out := make([]WithProgress, 0, len(items))
	for _, t := range items {
		p, err := DeriveStatus(t, today)
		if err != nil {
			return nil, err
		}
		out = append(out, WithProgress{Treatment: t, Progress: p})
	}
	return out, nil
}
