package model

import "github.com/google/uuid"

// Prescription belongs to a consultation and owns its medications. The
// expanded shape nests the consultation with its doctor and patient so the
// frontend can render a composed view from a single response.
type Prescription struct {
	Base
	ConsultationID uuid.UUID `json:"consultation_id" db:"consultation_id"`

	Medications  []*Medication `json:"medications" db:"-"`
	Consultation *Consultation `json:"consultation,omitempty" db:"-"`
}

// Medication cannot exist without its parent prescription.
type Medication struct {
	Base
	PrescriptionID uuid.UUID `json:"prescription_id" db:"prescription_id"`
	Name           string    `json:"name" db:"name"`
	Dosage         string    `json:"dosage" db:"dosage"`
	Instructions   string    `json:"instructions" db:"instructions"`
}

type CreatePrescriptionRequest struct {
	ConsultationID string `json:"consultation_id" binding:"required,uuid"`
}

type CreateMedicationRequest struct {
	Name         string `json:"name" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

// MedicationRemoved is returned when a medication is deleted: the removed
// row plus the refreshed parent prescription.
type MedicationRemoved struct {
	Medication   *Medication   `json:"medication"`
	Prescription *Prescription `json:"prescription"`
}
