package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dougladias/vida-plena-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no row. Parent-specific
// sentinels wrap it so services can name the missing entity.
var (
	ErrNotFound              = errors.New("record not found")
	ErrPatientNotFound       = fmt.Errorf("patient: %w", ErrNotFound)
	ErrDoctorNotFound        = fmt.Errorf("doctor: %w", ErrNotFound)
	ErrConsultationNotFound  = fmt.Errorf("consultation: %w", ErrNotFound)
	ErrPrescriptionNotFound  = fmt.Errorf("prescription: %w", ErrNotFound)
	ErrDuplicateUniqueField = errors.New("unique field already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ConsultationRepository interface {
	// Create verifies that the referenced patient and doctor exist and
	// inserts the row in the same transaction.
	Create(ctx context.Context, consultation *model.Consultation) error
	Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error)
	GetExpanded(ctx context.Context, id uuid.UUID) (*model.Consultation, error)
	List(ctx context.Context) ([]*model.Consultation, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PrescriptionRepository interface {
	// Create verifies the parent consultation inside the insert transaction.
	Create(ctx context.Context, prescription *model.Prescription) error
	// Get returns the prescription with medications and the nested
	// consultation/doctor/patient chain.
	Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error)
	List(ctx context.Context) ([]*model.Prescription, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddMedication(ctx context.Context, medication *model.Medication) error
	GetMedication(ctx context.Context, id uuid.UUID) (*model.Medication, error)
	DeleteMedication(ctx context.Context, id uuid.UUID) error
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	Get(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error)
	List(ctx context.Context) ([]*model.MedicalRecord, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}
