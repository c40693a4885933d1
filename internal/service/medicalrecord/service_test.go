package medicalrecord

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

type fakeRecordRepo struct {
	consultations map[uuid.UUID]struct{}
	records       map[uuid.UUID]*model.MedicalRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		consultations: make(map[uuid.UUID]struct{}),
		records:       make(map[uuid.UUID]*model.MedicalRecord),
	}
}

func (r *fakeRecordRepo) addConsultation() uuid.UUID {
	id := uuid.New()
	r.consultations[id] = struct{}{}
	return id
}

func (r *fakeRecordRepo) Create(ctx context.Context, record *model.MedicalRecord) error {
	if _, ok := r.consultations[record.ConsultationID]; !ok {
		return repository.ErrConsultationNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) Get(ctx context.Context, id uuid.UUID) (*model.MedicalRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (r *fakeRecordRepo) List(ctx context.Context) ([]*model.MedicalRecord, error) {
	out := make([]*model.MedicalRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeRecordRepo) Update(ctx context.Context, id uuid.UUID, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Diagnosis != nil {
		record.Diagnosis = *req.Diagnosis
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	return record, nil
}

func (r *fakeRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func TestCreateRecord(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	record, err := svc.CreateRecord(context.Background(), &model.CreateMedicalRecordRequest{
		ConsultationID: consultationID.String(),
		Diagnosis:      "Amigdalite",
		Notes:          "Repouso e hidratação",
	})
	require.NoError(t, err)
	assert.Equal(t, consultationID, record.ConsultationID)
}

func TestCreateRecordAbsentConsultation(t *testing.T) {
	svc := NewService(newFakeRecordRepo(), event.Noop{})

	_, err := svc.CreateRecord(context.Background(), &model.CreateMedicalRecordRequest{
		ConsultationID: uuid.NewString(),
		Diagnosis:      "Amigdalite",
		Notes:          "Repouso",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateRecordMissingDiagnosis(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	_, err := svc.CreateRecord(context.Background(), &model.CreateMedicalRecordRequest{
		ConsultationID: consultationID.String(),
		Notes:          "Repouso",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.records)
}

func TestUpdateRecordNotFound(t *testing.T) {
	svc := NewService(newFakeRecordRepo(), event.Noop{})

	diagnosis := "Faringite"
	_, err := svc.UpdateRecord(context.Background(), uuid.New(), &model.UpdateMedicalRecordRequest{Diagnosis: &diagnosis})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	appErr, _ := apperrors.AsAppError(err)
	assert.Equal(t, "Prontuário não encontrado(a)", appErr.Message)
}

func TestDeleteRecordTwice(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewService(repo, event.Noop{})
	consultationID := repo.addConsultation()

	record, err := svc.CreateRecord(context.Background(), &model.CreateMedicalRecordRequest{
		ConsultationID: consultationID.String(),
		Diagnosis:      "Amigdalite",
		Notes:          "Repouso",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(context.Background(), record.ID))

	err = svc.DeleteRecord(context.Background(), record.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
