package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougladias/vida-plena-api/internal/model"
	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

type fakePatientService struct {
	patients map[uuid.UUID]*model.Patient
}

func newFakePatientService() *fakePatientService {
	return &fakePatientService{patients: make(map[uuid.UUID]*model.Patient)}
}

func (s *fakePatientService) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		Base:      model.Base{ID: uuid.New()},
		Name:      req.Name,
		CPF:       req.CPF,
		DateBirth: req.DateBirth,
		Address:   req.Address,
		Phone:     req.Phone,
	}
	s.patients[patient.ID] = patient
	return patient, nil
}

func (s *fakePatientService) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, ok := s.patients[id]
	if !ok {
		return nil, apperrors.NotFound("Paciente", nil)
	}
	return patient, nil
}

func (s *fakePatientService) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(s.patients))
	for _, patient := range s.patients {
		out = append(out, patient)
	}
	return out, nil
}

func (s *fakePatientService) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, ok := s.patients[id]
	if !ok {
		return nil, apperrors.NotFound("Paciente", nil)
	}
	if req.Name != nil {
		patient.Name = *req.Name
	}
	return patient, nil
}

func (s *fakePatientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.patients[id]; !ok {
		return apperrors.NotFound("Paciente", nil)
	}
	delete(s.patients, id)
	return nil
}

func setupRouter(svc *fakePatientService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePatientReturns201(t *testing.T) {
	r := setupRouter(newFakePatientService())

	w := doJSON(r, http.MethodPost, "/patient", gin.H{
		"name":       "Maria Souza",
		"cpf":        "12345678900",
		"date_birth": "1990-05-10",
		"address":    "Rua das Flores, 100",
		"phone":      "11999990000",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var patient model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patient))
	assert.Equal(t, "Maria Souza", patient.Name)
	assert.NotEqual(t, uuid.Nil, patient.ID)
}

func TestCreatePatientMissingFieldReturns400(t *testing.T) {
	r := setupRouter(newFakePatientService())

	w := doJSON(r, http.MethodPost, "/patient", gin.H{
		"name":       "Maria Souza",
		"date_birth": "1990-05-10",
		"address":    "Rua das Flores, 100",
		"phone":      "11999990000",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "O campo cpf é obrigatório", body["error"])
}

func TestGetPatientInvalidID(t *testing.T) {
	r := setupRouter(newFakePatientService())

	w := doJSON(r, http.MethodGet, "/patient/nao-e-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ID inválido", body["error"])
}

func TestGetPatientNotFoundReturns400(t *testing.T) {
	r := setupRouter(newFakePatientService())

	w := doJSON(r, http.MethodGet, "/patient/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Paciente não encontrado(a)", body["error"])
}

func TestDeletePatientReturnsMessage(t *testing.T) {
	svc := newFakePatientService()
	created, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name: "Maria Souza", CPF: "12345678900", DateBirth: "1990-05-10",
		Address: "Rua das Flores, 100", Phone: "11999990000",
	})
	require.NoError(t, err)

	r := setupRouter(svc)
	w := doJSON(r, http.MethodDelete, "/patient/"+created.ID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Paciente removido com sucesso", body["message"])
	assert.Empty(t, svc.patients)
}

func TestListPatients(t *testing.T) {
	svc := newFakePatientService()
	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name: "Maria Souza", CPF: "12345678900", DateBirth: "1990-05-10",
		Address: "Rua das Flores, 100", Phone: "11999990000",
	})
	require.NoError(t, err)

	r := setupRouter(svc)
	w := doJSON(r, http.MethodGet, "/patient", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var patients []*model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	assert.Len(t, patients, 1)
}
