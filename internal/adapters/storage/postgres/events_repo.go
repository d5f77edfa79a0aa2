package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const eventColumns = `
	id, pet_id,
	tipo, status, titulo, descricao,
	data, hora, veterinario, clinica,
	preco, observacoes, lembrete,
	created_at
`

func (r *EventsRepo) Create(ctx context.Context, e events.MedicalEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO eventos_medicos (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		e.ID,
		e.PetID,
		string(e.Type),
		string(e.Status),
		e.Title,
		e.Description,
		e.Date,
		e.TimeOfDay,
		e.Veterinarian,
		e.Clinic,
		toNullFloat(e.Price),
		e.Notes,
		e.Reminder,
		e.CreatedAt,
	)
	return err
}

func (r *EventsRepo) Update(ctx context.Context, e events.MedicalEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE eventos_medicos
		SET
			tipo = $2,
			status = $3,
			titulo = $4,
			descricao = $5,
			data = $6,
			hora = $7,
			veterinario = $8,
			clinica = $9,
			preco = $10,
			observacoes = $11,
			lembrete = $12
		WHERE id = $1
	`,
		e.ID,
		string(e.Type),
		string(e.Status),
		e.Title,
		e.Description,
		e.Date,
		e.TimeOfDay,
		e.Veterinarian,
		e.Clinic,
		toNullFloat(e.Price),
		e.Notes,
		e.Reminder,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM eventos_medicos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.MedicalEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.MedicalEvent{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM eventos_medicos
		WHERE id = $1
	`, id)

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return events.MedicalEvent{}, ErrNotFound
	}
	return e, err
}

func (r *EventsRepo) ListByPet(ctx context.Context, petID string) ([]events.MedicalEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM eventos_medicos
		WHERE pet_id = $1
		ORDER BY data ASC, created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventsRepo) ListByPets(ctx context.Context, petIDs []string) ([]events.MedicalEvent, error) {
	if len(petIDs) == 0 {
		return []events.MedicalEvent{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM eventos_medicos
		WHERE pet_id = ANY($1)
		ORDER BY data ASC, created_at ASC
	`, petIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]events.MedicalEvent, error) {
	out := make([]events.MedicalEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(row rowScanner) (events.MedicalEvent, error) {
	var e events.MedicalEvent
	var (
		typ, status string
		price       sql.NullFloat64
	)
	if err := row.Scan(
		&e.ID,
		&e.PetID,
		&typ,
		&status,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.TimeOfDay,
		&e.Veterinarian,
		&e.Clinic,
		&price,
		&e.Notes,
		&e.Reminder,
		&e.CreatedAt,
	); err != nil {
		return events.MedicalEvent{}, err
	}

	e.Type = events.EventType(typ)
	e.Status = events.EventStatus(status)
	if price.Valid {
		v := price.Float64
		e.Price = &v
	}

	return e, nil
}
