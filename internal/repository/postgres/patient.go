package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, name, cpf, date_birth, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.CPF,
		patient.DateBirth,
		patient.Address,
		patient.Phone,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", translateErr(err))
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY created_at DESC`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, translateErr(err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	columns := []string{}
	values := []interface{}{}

	if req.Name != nil {
		columns = append(columns, "name")
		values = append(values, *req.Name)
	}
	if req.CPF != nil {
		columns = append(columns, "cpf")
		values = append(values, *req.CPF)
	}
	if req.DateBirth != nil {
		columns = append(columns, "date_birth")
		values = append(values, *req.DateBirth)
	}
	if req.Address != nil {
		columns = append(columns, "address")
		values = append(values, *req.Address)
	}
	if req.Phone != nil {
		columns = append(columns, "phone")
		values = append(values, *req.Phone)
	}

	if len(columns) == 0 {
		// No-op update is accepted; return the current row.
		return r.Get(ctx, id)
	}

	set, args := setClause(columns, values)
	query := fmt.Sprintf(`UPDATE patients SET %s WHERE id = $1 RETURNING *`, set)

	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, append([]interface{}{id}, args...)...); err != nil {
		return nil, translateErr(err)
	}
	return &patient, nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
