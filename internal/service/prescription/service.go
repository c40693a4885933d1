package prescription

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
	"github.com/dougladias/vida-plena-api/internal/service/event"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

type PrescriptionService interface {
	CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error)
	GetPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error)
	ListPrescriptions(ctx context.Context) ([]*model.Prescription, error)
	DeletePrescription(ctx context.Context, id uuid.UUID) error

	AddMedication(ctx context.Context, prescriptionID uuid.UUID, req *model.CreateMedicationRequest) (*model.Prescription, error)
	RemoveMedication(ctx context.Context, medicationID uuid.UUID) (*model.MedicationRemoved, error)
}

type Service struct {
	repo   repository.PrescriptionRepository
	events event.Recorder
}

func NewService(repo repository.PrescriptionRepository, events event.Recorder) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	if strings.TrimSpace(req.ConsultationID) == "" {
		return nil, apperrors.Validation("consultation_id")
	}

	consultationID, err := uuid.Parse(req.ConsultationID)
	if err != nil {
		return nil, apperrors.ValidationMsg("consultation_id inválido")
	}

	prescription := &model.Prescription{
		Base:           model.Base{ID: uuid.New()},
		ConsultationID: consultationID,
	}

	if err := s.repo.Create(ctx, prescription); err != nil {
		if errors.Is(err, repository.ErrConsultationNotFound) {
			return nil, apperrors.NotFound("Consulta", err)
		}
		return nil, apperrors.Internal(err)
	}

	// Re-fetch for the composed shape (medications list starts empty, the
	// consultation chain is filled in).
	created, err := s.repo.Get(ctx, prescription.ID)
	if err != nil {
		return prescription, nil
	}

	s.events.Record(ctx, "prescription", "CREATE", created)
	return created, nil
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	prescription, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Receita", err)
		}
		return nil, apperrors.Internal(err)
	}
	return prescription, nil
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*model.Prescription, error) {
	prescriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return prescriptions, nil
}

func (s *Service) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Receita", err)
		}
		return apperrors.Internal(err)
	}

	s.events.Record(ctx, "prescription", "DELETE", map[string]interface{}{"id": id})
	return nil
}

// AddMedication inserts the medication and returns the refreshed parent
// prescription with its full medication list and consultation chain.
func (s *Service) AddMedication(ctx context.Context, prescriptionID uuid.UUID, req *model.CreateMedicationRequest) (*model.Prescription, error) {
	if err := validateMedication(req); err != nil {
		return nil, err
	}

	medication := &model.Medication{
		Base:           model.Base{ID: uuid.New()},
		PrescriptionID: prescriptionID,
		Name:           req.Name,
		Dosage:         req.Dosage,
		Instructions:   req.Instructions,
	}

	if err := s.repo.AddMedication(ctx, medication); err != nil {
		if errors.Is(err, repository.ErrPrescriptionNotFound) {
			return nil, apperrors.NotFound("Receita", err)
		}
		return nil, apperrors.Internal(err)
	}

	prescription, err := s.repo.Get(ctx, prescriptionID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "prescription", "UPDATE", prescription)
	return prescription, nil
}

// RemoveMedication deletes the medication and returns it alongside the
// refreshed parent prescription so the caller can redraw a composed view.
func (s *Service) RemoveMedication(ctx context.Context, medicationID uuid.UUID) (*model.MedicationRemoved, error) {
	medication, err := s.repo.GetMedication(ctx, medicationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Medicamento", err)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.repo.DeleteMedication(ctx, medicationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Medicamento", err)
		}
		return nil, apperrors.Internal(err)
	}

	prescription, err := s.repo.Get(ctx, medication.PrescriptionID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "prescription", "UPDATE", prescription)
	return &model.MedicationRemoved{
		Medication:   medication,
		Prescription: prescription,
	}, nil
}

func validateMedication(req *model.CreateMedicationRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"dosage", req.Dosage},
		{"instructions", req.Instructions},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name)
		}
	}
	return nil
}
