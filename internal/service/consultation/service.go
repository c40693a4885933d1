package consultation

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dougladias/vida-plena-api/internal/email"
	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
	"github.com/dougladias/vida-plena-api/internal/service/event"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

type ConsultationService interface {
	CreateConsultation(ctx context.Context, req *model.CreateConsultationRequest) (*model.Consultation, error)
	GetConsultation(ctx context.Context, id uuid.UUID) (*model.Consultation, error)
	ListConsultations(ctx context.Context) ([]*model.Consultation, error)
	UpdateConsultation(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error)
	DeleteConsultation(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     repository.ConsultationRepository
	events   event.Recorder
	emailSvc email.Service
}

func NewService(repo repository.ConsultationRepository, events event.Recorder, emailSvc email.Service) *Service {
	if emailSvc == nil {
		emailSvc = email.Noop{}
	}
	return &Service{repo: repo, events: events, emailSvc: emailSvc}
}

func (s *Service) CreateConsultation(ctx context.Context, req *model.CreateConsultationRequest) (*model.Consultation, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.ValidationMsg("patient_id inválido")
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, apperrors.ValidationMsg("doctor_id inválido")
	}

	status := req.Status
	if status == "" {
		status = string(model.ConsultationStatusScheduled)
	}

	consultation := &model.Consultation{
		Base:      model.Base{ID: uuid.New()},
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
	}

	if err := s.repo.Create(ctx, consultation); err != nil {
		switch {
		case errors.Is(err, repository.ErrPatientNotFound):
			return nil, apperrors.NotFound("Paciente", err)
		case errors.Is(err, repository.ErrDoctorNotFound):
			return nil, apperrors.NotFound("Médico", err)
		default:
			return nil, apperrors.Internal(err)
		}
	}

	// Re-fetch with patient and doctor so the response carries the composed
	// shape and the notification has names to work with.
	expanded, err := s.repo.GetExpanded(ctx, consultation.ID)
	if err != nil {
		return consultation, nil
	}

	s.notifyDoctor(ctx, expanded)
	s.events.Record(ctx, "consultation", "CREATE", expanded)
	return expanded, nil
}

func (s *Service) notifyDoctor(ctx context.Context, consultation *model.Consultation) {
	if consultation.Doctor == nil || consultation.Doctor.Email == "" {
		return
	}
	patientName := ""
	if consultation.Patient != nil {
		patientName = consultation.Patient.Name
	}
	err := s.emailSvc.SendConsultationScheduled(ctx,
		consultation.Doctor.Email,
		consultation.Doctor.Name,
		patientName,
		consultation.Date,
		consultation.Time,
	)
	if err != nil {
		log.Warn().Err(err).Str("consultation_id", consultation.ID.String()).Msg("failed to send scheduling notification")
	}
}

func (s *Service) GetConsultation(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	consultation, err := s.repo.GetExpanded(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Consulta", err)
		}
		return nil, apperrors.Internal(err)
	}
	return consultation, nil
}

func (s *Service) ListConsultations(ctx context.Context) ([]*model.Consultation, error) {
	consultations, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return consultations, nil
}

func (s *Service) UpdateConsultation(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error) {
	if id == uuid.Nil {
		return nil, apperrors.Validation("id")
	}

	consultation, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Consulta", err)
		}
		return nil, apperrors.Internal(err)
	}

	s.events.Record(ctx, "consultation", "UPDATE", consultation)
	return consultation, nil
}

func (s *Service) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Consulta", err)
		}
		return apperrors.Internal(err)
	}

	s.events.Record(ctx, "consultation", "DELETE", map[string]interface{}{"id": id})
	return nil
}

func validateCreate(req *model.CreateConsultationRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"patient_id", req.PatientID},
		{"doctor_id", req.DoctorID},
		{"date", req.Date},
		{"time", req.Time},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name)
		}
	}
	return nil
}
