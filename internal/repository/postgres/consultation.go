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

type consultationRepository struct {
	db *sqlx.DB
}

func NewConsultationRepository(db *sqlx.DB) repository.ConsultationRepository {
	return &consultationRepository{db: db}
}

// Create checks both foreign keys and inserts the row in one transaction so
// a concurrent patient/doctor delete cannot slip between check and insert.
func (r *consultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, consultation.PatientID); err != nil {
		return translateErr(err)
	}
	if !exists {
		return repository.ErrPatientNotFound
	}

	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`, consultation.DoctorID); err != nil {
		return translateErr(err)
	}
	if !exists {
		return repository.ErrDoctorNotFound
	}

	consultation.CreatedAt = time.Now()
	consultation.UpdatedAt = time.Now()

	query := `
		INSERT INTO consultations (id, patient_id, doctor_id, date, time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.ExecContext(ctx, query,
		consultation.ID,
		consultation.PatientID,
		consultation.DoctorID,
		consultation.Date,
		consultation.Time,
		consultation.Status,
		consultation.CreatedAt,
		consultation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create consultation: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *consultationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	query := `SELECT * FROM consultations WHERE id = $1`
	var consultation model.Consultation
	if err := r.db.GetContext(ctx, &consultation, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &consultation, nil
}

// GetExpanded loads the consultation together with its patient and doctor.
func (r *consultationRepository) GetExpanded(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	consultation, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.expand(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (r *consultationRepository) expand(ctx context.Context, consultation *model.Consultation) error {
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, `SELECT * FROM patients WHERE id = $1`, consultation.PatientID); err != nil {
		return translateErr(err)
	}
	consultation.Patient = &patient

	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, `SELECT * FROM doctors WHERE id = $1`, consultation.DoctorID); err != nil {
		return translateErr(err)
	}
	consultation.Doctor = &doctor
	return nil
}

func (r *consultationRepository) List(ctx context.Context) ([]*model.Consultation, error) {
	query := `SELECT * FROM consultations ORDER BY date ASC, time ASC`
	consultations := []*model.Consultation{}
	if err := r.db.SelectContext(ctx, &consultations, query); err != nil {
		return nil, translateErr(err)
	}
	for _, consultation := range consultations {
		if err := r.expand(ctx, consultation); err != nil {
			return nil, err
		}
	}
	return consultations, nil
}

func (r *consultationRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error) {
	columns := []string{}
	values := []interface{}{}

	if req.PatientID != nil {
		columns = append(columns, "patient_id")
		values = append(values, *req.PatientID)
	}
	if req.DoctorID != nil {
		columns = append(columns, "doctor_id")
		values = append(values, *req.DoctorID)
	}
	if req.Date != nil {
		columns = append(columns, "date")
		values = append(values, *req.Date)
	}
	if req.Time != nil {
		columns = append(columns, "time")
		values = append(values, *req.Time)
	}
	if req.Status != nil {
		columns = append(columns, "status")
		values = append(values, *req.Status)
	}

	if len(columns) == 0 {
		return r.Get(ctx, id)
	}

	set, args := setClause(columns, values)
	query := fmt.Sprintf(`UPDATE consultations SET %s WHERE id = $1 RETURNING *`, set)

	var consultation model.Consultation
	if err := r.db.GetContext(ctx, &consultation, query, append([]interface{}{id}, args...)...); err != nil {
		return nil, translateErr(err)
	}
	return &consultation, nil
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM consultations WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
