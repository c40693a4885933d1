package prescription

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/repository"
	"github.com/dougladias/vida-plena-api/internal/service/event"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

type fakePrescriptionRepo struct {
	consultations map[uuid.UUID]*model.Consultation
	prescriptions map[uuid.UUID]*model.Prescription
	medications   map[uuid.UUID]*model.Medication
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{
		consultations: make(map[uuid.UUID]*model.Consultation),
		prescriptions: make(map[uuid.UUID]*model.Prescription),
		medications:   make(map[uuid.UUID]*model.Medication),
	}
}

func (r *fakePrescriptionRepo) addConsultation() uuid.UUID {
	id := uuid.New()
	r.consultations[id] = &model.Consultation{Base: model.Base{ID: id}, Status: string(model.ConsultationStatusScheduled)}
	return id
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, prescription *model.Prescription) error {
	if _, ok := r.consultations[prescription.ConsultationID]; !ok {
		return repository.ErrConsultationNotFound
	}
	r.prescriptions[prescription.ID] = prescription
	return nil
}

func (r *fakePrescriptionRepo) Get(ctx context.Context, id uuid.UUID) (*model.Prescription, error) {
	prescription, ok := r.prescriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	expanded := &model.Prescription{
		Base:           prescription.Base,
		ConsultationID: prescription.ConsultationID,
		Medications:    []*model.Medication{},
		Consultation:   r.consultations[prescription.ConsultationID],
	}
	for _, medication := range r.medications {
		if medication.PrescriptionID == id {
			expanded.Medications = append(expanded.Medications, medication)
		}
	}
	return expanded, nil
}

func (r *fakePrescriptionRepo) List(ctx context.Context) ([]*model.Prescription, error) {
	out := make([]*model.Prescription, 0, len(r.prescriptions))
	for id := range r.prescriptions {
		expanded, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

func (r *fakePrescriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.prescriptions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.prescriptions, id)
	for medID, medication := range r.medications {
		if medication.PrescriptionID == id {
			delete(r.medications, medID)
		}
	}
	return nil
}

func (r *fakePrescriptionRepo) AddMedication(ctx context.Context, medication *model.Medication) error {
	if _, ok := r.prescriptions[medication.PrescriptionID]; !ok {
		return repository.ErrPrescriptionNotFound
	}
	r.medications[medication.ID] = medication
	return nil
}

func (r *fakePrescriptionRepo) GetMedication(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	medication, ok := r.medications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return medication, nil
}

func (r *fakePrescriptionRepo) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.medications[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.medications, id)
	return nil
}

func medicationRequest() *model.CreateMedicationRequest {
	return &model.CreateMedicationRequest{
		Name:         "Amoxicilina",
		Dosage:       "500mg",
		Instructions: "1 comprimido a cada 8 horas",
	}
}

func TestCreatePrescription(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, consultationID, prescription.ConsultationID)
	assert.Empty(t, prescription.Medications)
	require.NotNil(t, prescription.Consultation)
	assert.Equal(t, consultationID, prescription.Consultation.ID)
}

func TestCreatePrescriptionAbsentConsultation(t *testing.T) {
	svc := NewService(newFakePrescriptionRepo(), event.Noop{})

	_, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: uuid.NewString(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Consulta não encontrado(a)", appErr.Message)
}

func TestAddMedicationAbsentPrescription(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})

	_, err := svc.AddMedication(context.Background(), uuid.New(), medicationRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, repo.medications)
}

func TestAddMedicationMissingFieldWritesNothing(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)

	req := medicationRequest()
	req.Dosage = ""
	_, err = svc.AddMedication(context.Background(), prescription.ID, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.medications)
}

func TestAddMedicationReturnsRefreshedPrescription(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)

	updated, err := svc.AddMedication(context.Background(), prescription.ID, medicationRequest())
	require.NoError(t, err)
	require.Len(t, updated.Medications, 1)
	assert.Equal(t, "Amoxicilina", updated.Medications[0].Name)
}

func TestRemoveMedicationReturnsRefreshedPrescription(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)

	withMedication, err := svc.AddMedication(context.Background(), prescription.ID, medicationRequest())
	require.NoError(t, err)
	medicationID := withMedication.Medications[0].ID

	removed, err := svc.RemoveMedication(context.Background(), medicationID)
	require.NoError(t, err)
	assert.Equal(t, medicationID, removed.Medication.ID)
	assert.Equal(t, prescription.ID, removed.Prescription.ID)
	assert.Empty(t, removed.Prescription.Medications)
}

func TestRemoveMedicationTwice(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)

	withMedication, err := svc.AddMedication(context.Background(), prescription.ID, medicationRequest())
	require.NoError(t, err)
	medicationID := withMedication.Medications[0].ID

	_, err = svc.RemoveMedication(context.Background(), medicationID)
	require.NoError(t, err)

	_, err = svc.RemoveMedication(context.Background(), medicationID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeletePrescriptionRemovesMedications(t *testing.T) {
	repo := newFakePrescriptionRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	prescription, err := svc.CreatePrescription(context.Background(), &model.CreatePrescriptionRequest{
		ConsultationID: consultationID.String(),
	})
	require.NoError(t, err)

	_, err = svc.AddMedication(context.Background(), prescription.ID, medicationRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePrescription(context.Background(), prescription.ID))
	assert.Empty(t, repo.medications)

	err = svc.DeletePrescription(context.Background(), prescription.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
