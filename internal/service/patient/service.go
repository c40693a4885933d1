package patient

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

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   repository.PatientRepository
	events event.Recorder
}

func NewService(repo repository.PatientRepository, events event.Recorder) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		Base:      model.Base{ID: uuid.New()},
		Name:      req.Name,
		CPF:       req.CPF,
		DateBirth: req.DateBirth,
		Address:   req.Address,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateUniqueField) {
			return nil, apperrors.ValidationMsg("CPF já cadastrado")
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "patient", "CREATE", patient)
	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Paciente", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("id")
	}

	patient, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Paciente", err)
		}
		if errors.Is(err, repository.ErrDuplicateUniqueField) {
			return nil, apperrors.ValidationMsg("CPF já cadastrado")
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "patient", "UPDATE", patient)
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Paciente", err)
		}
		return apperrors.Internal(err)
	}

	s.events.Record(ctx, "patient", "DELETE", map[string]interface{}{"id": id})
	return nil
}

func validateCreate(req *model.CreatePatientRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"cpf", req.CPF},
		{"date_birth", req.DateBirth},
		{"address", req.Address},
		{"phone", req.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name)
		}
	}
	return nil
}
