package client

import (
	"context"
	"net/http"

	"github.com/dougladias/vida-plena-api/internal/model"
)

// MessageResponse is the body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, req *model.CreateUserRequest) error {
	return c.do(ctx, http.MethodPost, "/user", req, nil)
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*model.SessionResponse, error) {
	var session model.SessionResponse
	req := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/session", &req, &session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

func (c *Client) Me(ctx context.Context) (*model.UserDetail, error) {
	var detail model.UserDetail
	if err := c.do(ctx, http.MethodGet, "/me", nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	var patient model.Patient
	if err := c.mutate(ctx, http.MethodPost, "/patient", req, &patient, "patient"); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	var patients []*model.Patient
	if err := c.do(ctx, http.MethodGet, "/patient", nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	var patient model.Patient
	if err := c.do(ctx, http.MethodGet, "/patient/"+id, nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) UpdatePatient(ctx context.Context, id string, req *model.UpdatePatientRequest) (*model.Patient, error) {
	var patient model.Patient
	if err := c.mutate(ctx, http.MethodPut, "/patient/"+id, req, &patient, "patient"); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/patient/"+id, nil, nil, "patient")
}

func (c *Client) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := c.mutate(ctx, http.MethodPost, "/doctor", req, &doctor, "doctor"); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	var doctors []*model.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctor", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *Client) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctor/"+id, nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id string, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := c.mutate(ctx, http.MethodPut, "/doctor/"+id, req, &doctor, "doctor"); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/doctor/"+id, nil, nil, "doctor")
}

func (c *Client) CreateConsultation(ctx context.Context, req *model.CreateConsultationRequest) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := c.mutate(ctx, http.MethodPost, "/consultation", req, &consultation, "consultation"); err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (c *Client) ListConsultations(ctx context.Context) ([]*model.Consultation, error) {
	var consultations []*model.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultation", nil, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

func (c *Client) GetConsultation(ctx context.Context, id string) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := c.do(ctx, http.MethodGet, "/consultation/"+id, nil, &consultation); err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (c *Client) UpdateConsultation(ctx context.Context, id string, req *model.UpdateConsultationRequest) (*model.Consultation, error) {
	var consultation model.Consultation
	if err := c.mutate(ctx, http.MethodPut, "/consultation/"+id, req, &consultation, "consultation"); err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (c *Client) DeleteConsultation(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/consultation/"+id, nil, nil, "consultation")
}

func (c *Client) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := c.mutate(ctx, http.MethodPost, "/prescription", req, &prescription, "prescription"); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) ListPrescriptions(ctx context.Context) ([]*model.Prescription, error) {
	var prescriptions []*model.Prescription
	if err := c.do(ctx, http.MethodGet, "/prescription", nil, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *Client) GetPrescription(ctx context.Context, id string) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := c.do(ctx, http.MethodGet, "/prescription/"+id, nil, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) DeletePrescription(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/prescription/"+id, nil, nil, "prescription")
}

func (c *Client) AddMedication(ctx context.Context, prescriptionID string, req *model.CreateMedicationRequest) (*model.Prescription, error) {
	var prescription model.Prescription
	if err := c.mutate(ctx, http.MethodPost, "/prescription/"+prescriptionID+"/medications", req, &prescription, "prescription"); err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (c *Client) RemoveMedication(ctx context.Context, medicationID string) (*model.MedicationRemoved, error) {
	var removed model.MedicationRemoved
	if err := c.mutate(ctx, http.MethodDelete, "/prescription/medications/"+medicationID, nil, &removed, "prescription"); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (c *Client) CreateMedicalRecord(ctx context.Context, req *model.CreateMedicalRecordRequest) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	if err := c.mutate(ctx, http.MethodPost, "/medicalRecord", req, &record, "medicalRecord"); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListMedicalRecords(ctx context.Context) ([]*model.MedicalRecord, error) {
	var records []*model.MedicalRecord
	if err := c.do(ctx, http.MethodGet, "/medicalRecord", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) GetMedicalRecord(ctx context.Context, id string) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	if err := c.do(ctx, http.MethodGet, "/medicalRecord/"+id, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) UpdateMedicalRecord(ctx context.Context, id string, req *model.UpdateMedicalRecordRequest) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	if err := c.mutate(ctx, http.MethodPut, "/medicalRecord/"+id, req, &record, "medicalRecord"); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) DeleteMedicalRecord(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/medicalRecord/"+id, nil, nil, "medicalRecord")
}
