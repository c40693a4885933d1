package model

import "github.com/google/uuid"

type MedicalRecord struct {
	Base
	ConsultationID uuid.UUID `json:"consultation_id" db:"consultation_id"`
	Diagnosis      string    `json:"diagnosis" db:"diagnosis"`
	Notes          string    `json:"notes" db:"notes"`

	Consultation *Consultation `json:"consultation,omitempty" db:"-"`
}

type CreateMedicalRecordRequest struct {
	ConsultationID string `json:"consultation_id" binding:"required,uuid"`
	Diagnosis      string `json:"diagnosis" binding:"required"`
	Notes          string `json:"notes" binding:"required"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis *string `json:"diagnosis"`
	Notes     *string `json:"notes"`
}
