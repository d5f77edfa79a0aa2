package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pedroolvr19/PetPal-Connect/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

const treatmentColumns = `
	id, pet_id,
	nome_medicamento, dosagem, horarios, instrucoes,
	data_inicio, duracao_dias, status,
	created_at, updated_at
`

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medicamentos (`+treatmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		t.ID,
		t.PetID,
		t.Name,
		t.Dosage,
		joinSchedule(t.Schedule),
		t.Instructions,
		t.StartDate,
		t.DurationDays,
		string(t.Status),
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medicamentos
		SET
			nome_medicamento = $2,
			dosagem = $3,
			horarios = $4,
			instrucoes = $5,
			data_inicio = $6,
			duracao_dias = $7,
			status = $8,
			updated_at = $9
		WHERE id = $1
	`,
		t.ID,
		t.Name,
		t.Dosage,
		joinSchedule(t.Schedule),
		t.Instructions,
		t.StartDate,
		t.DurationDays,
		string(t.Status),
		t.UpdatedAt,
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

func (r *TreatmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return treatments.Treatment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM medicamentos
		WHERE id = $1
	`, id)

	t, err := scanTreatment(row)
	if err == sql.ErrNoRows {
		return treatments.Treatment{}, ErrNotFound
	}
	return t, err
}

func (r *TreatmentsRepo) ListByPet(ctx context.Context, petID string) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM medicamentos
		WHERE pet_id = $1
		ORDER BY data_inicio ASC, created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTreatments(rows)
}

func (r *TreatmentsRepo) ListByPets(ctx context.Context, petIDs []string) ([]treatments.Treatment, error) {
	if len(petIDs) == 0 {
		return []treatments.Treatment{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+treatmentColumns+`
		FROM medicamentos
		WHERE pet_id = ANY($1)
		ORDER BY data_inicio ASC, created_at ASC
	`, petIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTreatments(rows)
}

func collectTreatments(rows *sql.Rows) ([]treatments.Treatment, error) {
	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTreatment(row rowScanner) (treatments.Treatment, error) {
	var t treatments.Treatment
	var status, schedule string
	if err := row.Scan(
		&t.ID,
		&t.PetID,
		&t.Name,
		&t.Dosage,
		&schedule,
		&t.Instructions,
		&t.StartDate,
		&t.DurationDays,
		&status,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return treatments.Treatment{}, err
	}

	t.Status = treatments.TreatmentStatus(status)
	t.Schedule = splitSchedule(schedule)
	return t, nil
}

// horarios se guarda como texto "08:00,20:00". Evita lidiar con arrays
// de Postgres a través de database/sql.
func joinSchedule(hs []string) string {
	return strings.Join(hs, ",")
}

func splitSchedule(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
