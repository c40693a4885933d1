package model

// Patient represents a clinic patient. date_birth stays a plain string on
// the wire and in the database (the frontend submits form values as-is).
type Patient struct {
	Base
	Name      string `json:"name" db:"name"`
	CPF       string `json:"cpf" db:"cpf"`
	DateBirth string `json:"date_birth" db:"date_birth"`
	Address   string `json:"address" db:"address"`
	Phone     string `json:"phone" db:"phone"`
}

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	DateBirth string `json:"date_birth" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name"`
	CPF       *string `json:"cpf"`
	DateBirth *string `json:"date_birth"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}
