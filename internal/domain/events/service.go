package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/platform/dates"

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
	Type         EventType
	Status       EventStatus // opcional, default agendado
	Title        string
	Description  string
	Date         time.Time
	TimeOfDay    string
	Veterinarian string
	Clinic       string
	Price        *float64
	Notes        string
	Reminder     bool
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (MedicalEvent, error) {
	if strings.TrimSpace(petID) == "" {
		return MedicalEvent{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return MedicalEvent{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return MedicalEvent{}, ErrInvalidInput
	}
	if _, err := ParseEventType(string(in.Type)); err != nil {
		return MedicalEvent{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = EventStatusScheduled
	}
	if _, err := ParseEventStatus(string(status)); err != nil {
		return MedicalEvent{}, ErrInvalidInput
	}

	e := MedicalEvent{
		ID:           uuid.NewString(),
		PetID:        petID,
		Type:         in.Type,
		Status:       status,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Date:         dates.StartOfDay(in.Date),
		TimeOfDay:    strings.TrimSpace(in.TimeOfDay),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Clinic:       strings.TrimSpace(in.Clinic),
		Price:        in.Price,
		Notes:        strings.TrimSpace(in.Notes),
		Reminder:     in.Reminder,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return MedicalEvent{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (MedicalEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicalEvent{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string, f Filter) ([]MedicalEvent, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	return Apply(items, f), nil
}

// ListByPets junta los eventos de varios pets (vista calendario del tutor)
// y aplica el filtro en memoria: los predicados son el core puro, el repo
// solo acota por ownership.
func (s *Service) ListByPets(ctx context.Context, petIDs []string, f Filter) ([]MedicalEvent, error) {
	items, err := s.repo.ListByPets(ctx, petIDs)
	if err != nil {
		return nil, err
	}
	return Apply(items, f), nil
}

// UpdateStatus transiciona el evento (agendado -> realizado/cancelado).
func (s *Service) UpdateStatus(ctx context.Context, id string, status EventStatus) (MedicalEvent, error) {
	if _, err := ParseEventStatus(string(status)); err != nil {
		return MedicalEvent{}, ErrInvalidInput
	}

	e, err := s.GetByID(ctx, id)
	if err != nil {
		return MedicalEvent{}, err
	}

	e.Status = status
	if err := s.repo.Update(ctx, e); err != nil {
		return MedicalEvent{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
