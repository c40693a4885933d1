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

type prescriptionRepository struct {
	db *sqlx.DB
}

func NewPrescriptionRepository(db *sqlx.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM consultations WHERE id = $1)`, prescription.ConsultationID); err != nil {
		return translateErr(err)
	}
	if !exists {
		return repository.ErrConsultationNotFound
	}

	prescription.CreatedAt = time.Now()
	prescription.UpdatedAt = time.Now()

	query := `
		INSERT INTO prescriptions (id, consultation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(ctx, query,
		prescription.ID,
		prescription.ConsultationID,
		prescription.CreatedAt,
		prescription.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *prescriptionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	query := `SELECT * FROM prescriptions WHERE id = $1`
	var prescription model.Prescription
	if err := r.db.GetContext(ctx, &prescription, query, id); err != nil {
		return nil, translateErr(err)
	}
	if err := r.expand(ctx, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

// expand fills the medications list and the consultation/doctor/patient
// chain the frontend renders a prescription view from.
func (r *prescriptionRepository) expand(ctx context.Context, prescription *model.Prescription) error {
	medications := []*model.Medication{}
	if err := r.db.SelectContext(ctx, &medications, `SELECT * FROM medications WHERE prescription_id = $1`, prescription.ID); err != nil {
		return translateErr(err)
	}
	prescription.Medications = medications

	var consultation model.Consultation
	if err := r.db.GetContext(ctx, &consultation, `SELECT * FROM consultations WHERE id = $1`, prescription.ConsultationID); err != nil {
		return translateErr(err)
	}

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

	prescription.Consultation = &consultation
	return nil
}

func (r *prescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	query := `SELECT * FROM prescriptions ORDER BY created_at DESC`
	prescriptions := []*model.Prescription{}
	if err := r.db.SelectContext(ctx, &prescriptions, query); err != nil {
		return nil, translateErr(err)
	}
	for _, prescription := range prescriptions {
		if err := r.expand(ctx, prescription); err != nil {
			return nil, err
		}
	}
	return prescriptions, nil
}

// Delete removes the prescription and its medications in one transaction.
func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM medications WHERE prescription_id = $1`, id); err != nil {
		return translateErr(err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM prescriptions WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}

	return tx.Commit()
}

func (r *prescriptionRepository) AddMedication(ctx context.Context, medication *model.Medication) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM prescriptions WHERE id = $1)`, medication.PrescriptionID); err != nil {
		return translateErr(err)
	}
	if !exists {
		return repository.ErrPrescriptionNotFound
	}

	medication.CreatedAt = time.Now()
	medication.UpdatedAt = time.Now()

	query := `
		INSERT INTO medications (id, prescription_id, name, dosage, instructions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, query,
		medication.ID,
		medication.PrescriptionID,
		medication.Name,
		medication.Dosage,
		medication.Instructions,
		medication.CreatedAt,
		medication.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medication: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *prescriptionRepository) GetMedication(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	query := `SELECT * FROM medications WHERE id = $1`
	var medication model.Medication
	if err := r.db.GetContext(ctx, &medication, query, id); err != nil {
		return nil, translateErr(err)
	}
	return &medication, nil
}

func (r *prescriptionRepository) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM medications WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
