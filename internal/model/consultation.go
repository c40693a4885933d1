package model

import "github.com/google/uuid"

type ConsultationStatus string

const (
	ConsultationStatusScheduled ConsultationStatus = "Agendada"
	ConsultationStatusDone      ConsultationStatus = "Realizada"
	ConsultationStatusCancelled ConsultationStatus = "Cancelada"
)

// Consultation links a patient and a doctor on a given date/time. Patient
// and Doctor are filled in by the repository when the caller asks for the
// expanded shape; they are never persisted on this row.
type Consultation struct {
	Base
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Date      string    `json:"date" db:"date"`
	Time      string    `json:"time" db:"time"`
	Status    string    `json:"status" db:"status"`

	Patient *Patient `json:"patient,omitempty" db:"-"`
	Doctor  *Doctor  `json:"doctor,omitempty" db:"-"`
}

type CreateConsultationRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
	DoctorID  string `json:"doctor_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Status    string `json:"status" binding:"omitempty"`
}

type UpdateConsultationRequest struct {
	PatientID *string `json:"patient_id" binding:"omitempty,uuid"`
	DoctorID  *string `json:"doctor_id" binding:"omitempty,uuid"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Status    *string `json:"status"`
}
