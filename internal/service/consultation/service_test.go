package consultation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
	"github.com/dougladias/vida-plena-api/internal/service/event"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

type fakeConsultationRepo struct {
	patients      map[uuid.UUID]*model.Patient
	doctors       map[uuid.UUID]*model.Doctor
	consultations map[uuid.UUID]*model.Consultation
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{
		patients:      make(map[uuid.UUID]*model.Patient),
		doctors:       make(map[uuid.UUID]*model.Doctor),
		consultations: make(map[uuid.UUID]*model.Consultation),
	}
}

func (r *fakeConsultationRepo) addPatient(name string) uuid.UUID {
	id := uuid.New()
	r.patients[id] = &model.Patient{Base: model.Base{ID: id}, Name: name}
	return id
}

func (r *fakeConsultationRepo) addDoctor(name, email string) uuid.UUID {
	id := uuid.New()
	r.doctors[id] = &model.Doctor{Base: model.Base{ID: id}, Name: name, Email: email}
	return id
}

func (r *fakeConsultationRepo) Create(ctx context.Context, consultation *model.Consultation) error {
	if _, ok := r.patients[consultation.PatientID]; !ok {
		return repository.ErrPatientNotFound
	}
	if _, ok := r.doctors[consultation.DoctorID]; !ok {
		return repository.ErrDoctorNotFound
	}
	r.consultations[consultation.ID] = consultation
	return nil
}

func (r *fakeConsultationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	consultation, ok := r.consultations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return consultation, nil
}

func (r *fakeConsultationRepo) GetExpanded(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	consultation, ok := r.consultations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	expanded := *consultation
	expanded.Patient = r.patients[consultation.PatientID]
	expanded.Doctor = r.doctors[consultation.DoctorID]
	return &expanded, nil
}

func (r *fakeConsultationRepo) List(ctx context.Context) ([]*model.Consultation, error) {
	out := make([]*model.Consultation, 0, len(r.consultations))
	for _, consultation := range r.consultations {
		out = append(out, consultation)
	}
	return out, nil
}

func (r *fakeConsultationRepo) Update(ctx context.Context, id uuid.UUID, req *model.UpdateConsultationRequest) (*model.Consultation, error) {
	consultation, ok := r.consultations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Date != nil {
		consultation.Date = *req.Date
	}
	if req.Time != nil {
		consultation.Time = *req.Time
	}
	if req.Status != nil {
		consultation.Status = *req.Status
	}
	return consultation, nil
}

func (r *fakeConsultationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.consultations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.consultations, id)
	return nil
}

type fakeEmailService struct {
	sent []string
	err  error
}

func (f *fakeEmailService) SendConsultationScheduled(ctx context.Context, to, doctorName, patientName, date, timeOfDay string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func createRequest(patientID, doctorID uuid.UUID) *model.CreateConsultationRequest {
	return &model.CreateConsultationRequest{
		PatientID: patientID.String(),
		DoctorID:  doctorID.String(),
		Date:      "2026-09-15",
		Time:      "14:30",
	}
}

func TestCreateConsultationDefaultsToScheduled(t *testing.T) {
	repo := newFakeConsultationRepo()
	patientID := repo.addPatient("Maria Souza")
	doctorID := repo.addDoctor("Carlos Lima", "carlos@vidaplena.com.br")
	emails := &fakeEmailService{}
	svc := NewService(repo, event.Noop{}, emails)

	consultation, err := svc.CreateConsultation(context.Background(), createRequest(patientID, doctorID))
	require.NoError(t, err)
	assert.Equal(t, string(model.ConsultationStatusScheduled), consultation.Status)
	require.NotNil(t, consultation.Patient)
	require.NotNil(t, consultation.Doctor)
	assert.Equal(t, []string{"carlos@vidaplena.com.br"}, emails.sent)
}

func TestCreateConsultationMissingField(t *testing.T) {
	repo := newFakeConsultationRepo()
	svc := NewService(repo, event.Noop{}, nil)

	req := createRequest(uuid.New(), uuid.New())
	req.Time = ""
	_, err := svc.CreateConsultation(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.consultations)
}

func TestCreateConsultationAbsentPatient(t *testing.T) {
	repo := newFakeConsultationRepo()
	doctorID := repo.addDoctor("Carlos Lima", "carlos@vidaplena.com.br")
	svc := NewService(repo, event.Noop{}, nil)

	_, err := svc.CreateConsultation(context.Background(), createRequest(uuid.New(), doctorID))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Paciente não encontrado(a)", appErr.Message)
}

func TestCreateConsultationAbsentDoctor(t *testing.T) {
	repo := newFakeConsultationRepo()
	patientID := repo.addPatient("Maria Souza")
	svc := NewService(repo, event.Noop{}, nil)

	_, err := svc.CreateConsultation(context.Background(), createRequest(patientID, uuid.New()))
	require.Error(t, err)

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Médico não encontrado(a)", appErr.Message)
}

func TestCreateConsultationEmailFailureDoesNotFail(t *testing.T) {
	repo := newFakeConsultationRepo()
	patientID := repo.addPatient("Maria Souza")
	doctorID := repo.addDoctor("Carlos Lima", "carlos@vidaplena.com.br")
	emails := &fakeEmailService{err: errors.New("smtp: connection refused")}
	svc := NewService(repo, event.Noop{}, emails)

	consultation, err := svc.CreateConsultation(context.Background(), createRequest(patientID, doctorID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, consultation.ID)
}

func TestUpdateConsultationStatus(t *testing.T) {
	repo := newFakeConsultationRepo()
	patientID := repo.addPatient("Maria Souza")
	doctorID := repo.addDoctor("Carlos Lima", "carlos@vidaplena.com.br")
	svc := NewService(repo, event.Noop{}, nil)

	created, err := svc.CreateConsultation(context.Background(), createRequest(patientID, doctorID))
	require.NoError(t, err)

	status := string(model.ConsultationStatusDone)
	updated, err := svc.UpdateConsultation(context.Background(), created.ID, &model.UpdateConsultationRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)
}

func TestDeleteConsultationTwice(t *testing.T) {
	repo := newFakeConsultationRepo()
	patientID := repo.addPatient("Maria Souza")
	doctorID := repo.addDoctor("Carlos Lima", "carlos@vidaplena.com.br")
	svc := NewService(repo, event.Noop{}, nil)

	created, err := svc.CreateConsultation(context.Background(), createRequest(patientID, doctorID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteConsultation(context.Background(), created.ID))

	err = svc.DeleteConsultation(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
