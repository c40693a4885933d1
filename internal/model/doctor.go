package model

type Doctor struct {
	Base
	Name      string `json:"name" db:"name"`
	CRM       string `json:"crm" db:"crm"`
	Specialty string `json:"specialty" db:"specialty"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
}

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	CRM       string `json:"crm" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name"`
	CRM       *string `json:"crm"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
}
