package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/events"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/pets"
	"github.com/pedroolvr19/PetPal-Connect/internal/domain/weights"

	"github.com/jung-kurt/gofpdf"
)

// PetSource, EventSource y WeightSource son los cortes mínimos de los
// servicios de dominio que necesita el generador. Interfaces chicas
// para poder fakear en tests sin levantar los módulos enteros.
type PetSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type EventSource interface {
	ListByPet(ctx context.Context, petID string, f events.Filter) ([]events.MedicalEvent, error)
}

type WeightSource interface {
	Latest(ctx context.Context, petID string) (weights.WeightSample, error)
}

type Service struct {
	pets    PetSource
	events  EventSource
	weights WeightSource

	now func() time.Time
}

func NewService(p PetSource, e EventSource, w WeightSource) *Service {
	return &Service{
		pets:    p,
		events:  e,
		weights: w,
		now:     time.Now,
	}
}

// HealthReportPDF arma el PDF de salud de la mascota: banda de cabecera,
// ficha del pet, alerta de alergias y el historial de eventos con salto
// de página. Devuelve los bytes listos para servir con Content-Type
// application/pdf.
func (s *Service) HealthReportPDF(ctx context.Context, petID string) ([]byte, string, error) {
	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, "", err
	}

	// Un backend caído no tumba el reporte: sin historial se imprime
	// el placeholder "Nenhum registro encontrado.", igual que con el peso.
	history, err := s.events.ListByPet(ctx, petID, events.Filter{})
	if err != nil {
		history = nil
	}

	currentWeight := "N/A"
	if latest, err := s.weights.Latest(ctx, petID); err == nil {
		currentWeight = fmt.Sprintf("%.1f", latest.WeightKg)
	} else if pet.WeightKg != nil {
		currentWeight = fmt.Sprintf("%.1f", *pet.WeightKg)
	}

	today := s.now().UTC()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// banda de cabecera azul
	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(105-pdf.GetStringWidth("Relatório de Saúde - PET HEALTH")/2, 20,
		tr("Relatório de Saúde - PET HEALTH"))

	// ficha del pet
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 60, tr(fmt.Sprintf("Pet: %s", pet.Name)))

	breed := pet.Breed
	if breed == "" {
		breed = "SRD"
	}
	microchip := pet.Microchip
	if microchip == "" {
		microchip = "Não informado"
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 70, tr(fmt.Sprintf("Espécie: %s", pet.Species)))
	pdf.Text(20, 80, tr(fmt.Sprintf("Raça: %s", breed)))
	pdf.Text(120, 70, tr(fmt.Sprintf("Idade: %s", pets.DisplayAge(pet, today))))
	pdf.Text(120, 80, tr(fmt.Sprintf("Peso Atual: %s kg", currentWeight)))
	pdf.Text(20, 90, tr(fmt.Sprintf("Microchip: %s", microchip)))

	if pet.Allergies != "" {
		pdf.SetTextColor(220, 38, 38)
		pdf.Text(20, 105, tr(fmt.Sprintf("ALERGIAS: %s", pet.Allergies)))
		pdf.SetTextColor(0, 0, 0)
	}

	// historial
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 120, tr("Histórico Recente"))
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 122, 190, 122)

	y := 135.0
	if len(history) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(20, y, tr("Nenhum registro encontrado."))
	}
	for _, evt := range history {
		if y > 270 {
			pdf.AddPage()
			y = 20
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(20, y, tr(fmt.Sprintf("%s - %s (%s)",
			evt.Date.Format("02/01/2006"), evt.Title, evt.Type)))

		pdf.SetFont("Helvetica", "", 10)
		y += 6
		desc := evt.Description
		if desc == "" {
			desc = "-"
		}
		pdf.Text(25, y, tr(fmt.Sprintf("Obs: %s", desc)))

		if evt.Veterinarian != "" {
			y += 5
			pdf.Text(25, y, tr(fmt.Sprintf("Vet: %s", evt.Veterinarian)))
		}

		y += 12
	}

	// pie de página
	_, pageHeight := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := fmt.Sprintf("Gerado em %s pelo sistema PET HEALTH", today.Format("02/01/2006"))
	pdf.Text(105-pdf.GetStringWidth(footer)/2, pageHeight-10, tr(footer))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Relatorio_%s.pdf", pet.Name)
	return buf.Bytes(), filename, nil
}
