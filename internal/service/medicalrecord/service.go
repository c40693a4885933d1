package medicalrecord

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

type MedicalRecordService interface {
	CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error)
	ListRecords(ctx context.Context) ([]*model.MedicalRecord, error)
	UpdateRecord(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   repository.MedicalRecordRepository
	events event.Recorder
}

func NewService(repo repository.MedicalRecordRepository, events event.Recorder) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) CreateRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"consultation_id", req.ConsultationID},
		{"diagnosis", req.Diagnosis},
		{"notes", req.Notes},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.Validation(f.name)
		}
	}

	consultationID, err := uuid.Parse(req.ConsultationID)
	if err != nil {
		return nil, apperrors.ValidationMsg("consultation_id inválido")
	}

	record := &model.MedicalRecord{
		Base:           model.Base{ID: uuid.New()},
		ConsultationID: consultationID,
		Diagnosis:      req.Diagnosis,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrConsultationNotFound) {
			return nil, apperrors.NotFound("Consulta", err)
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "medicalRecord", "CREATE", record)
	return record, nil
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Prontuário", err)
		}
		return nil, apperrors.Internal(err)
	}
	return record, nil
}

func (s *Service) ListRecords(ctx context.Context) ([]*model.MedicalRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return records, nil
}

func (s *Service) UpdateRecord(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("id")
	}

	record, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Prontuário", err)
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "medicalRecord", "UPDATE", record)
	return record, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Prontuário", err)
		}
		return apperrors.Internal(err)
	}

	s.events.Record(ctx, "medicalRecord", "DELETE", map[string]interface{}{"id": id})
	return nil
}
