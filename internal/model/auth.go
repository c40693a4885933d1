package model

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned by POST /session. The frontend stores the
// token in a cookie named "session".
type SessionResponse struct {
	Token string      `json:"token"`
	User  *UserDetail `json:"user"`
}
