package model

// User roles
const (
	UserRoleAdmin     = "admin"
	UserRoleSecretary = "secretary"
	UserRoleDoctor    = "doctor"
)

// User represents a system user. The password hash never leaves the API.
type User struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin secretary doctor"`
}

// UserDetail is what GET /me exposes about the caller.
type UserDetail struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
