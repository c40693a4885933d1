package doctor

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

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   repository.DoctorRepository
	events event.Recorder
}

func NewService(repo repository.DoctorRepository, events event.Recorder) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	doctor := &model.Doctor{
		Base:      model.Base{ID: uuid.New()},
		Name:      req.Name,
		CRM:       req.CRM,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicateUniqueField) {
			return nil, apperrors.ValidationMsg("CRM já cadastrado")
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "doctor", "CREATE", doctor)
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Médico", err)
		}
		return nil, apperrors.Internal(err)
	}
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return doctors, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("id")
	}

	doctor, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Médico", err)
		}
		if errors.Is(err, repository.ErrDuplicateUniqueField) {
			return nil, apperrors.ValidationMsg("CRM já cadastrado")
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "doctor", "UPDATE", doctor)
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Médico", err)
		}
		return apperrors.Internal(err)
	}

	s.events.Record(ctx, "doctor", "DELETE", map[string]interface{}{"id": id})
	return nil
}

func validateCreate(req *model.CreateDoctorRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"crm", req.CRM},
		{"specialty", req.Specialty},
		{"phone", req.Phone},
		{"email", req.Email},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name)
		}
	}
	return nil
}
