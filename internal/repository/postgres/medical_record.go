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

type medicalRecordRepository struct {
	db *sqlx.DB
}

func NewMedicalRecordRepository(db *sqlx.DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM consultations WHERE id = $1)`, record.ConsultationID); err != nil {
		return translateErr(err)
	}
	if !exists {
		return repository.ErrConsultationNotFound
	}

	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	query := `
		INSERT INTO medical_records (id, consultation_id, diagnosis, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, query,
		record.ID,
		record.ConsultationID,
		record.Diagnosis,
		record.Notes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *medicalRecordRepository) Get(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	query := `SELECT * FROM medical_records WHERE id = $1`
	var record model.MedicalRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) List(ctx context.Context) ([]*model.MedicalRecord, error) {
	query := `SELECT * FROM medical_records ORDER BY created_at DESC`
	records := []*model.MedicalRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, translateErr(err)
	}
	return records, nil
}

func (r *medicalRecordRepository) Update(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	columns := []string{}
	values := []interface{}{}

	if req.Diagnosis != nil {
		columns = append(columns, "diagnosis")
		values = append(values, *req.Diagnosis)
	}
	if req.Notes != nil {
		columns = append(columns, "notes")
		values = append(values, *req.Notes)
	}

	if len(columns) == 0 {
		return r.Get(ctx, id)
	}

	set, args := setClause(columns, values)
	query := fmt.Sprintf(`UPDATE medical_records SET %s WHERE id = $1 RETURNING *`, set)

	var record model.MedicalRecord
	if err := r.db.GetContext(ctx, &record, query, append([]interface{}{id}, args...)...); err != nil {
		return nil, translateErr(err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM medical_records WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
