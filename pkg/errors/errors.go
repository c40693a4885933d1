package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

const (
	ErrValidation ErrorCode = iota + 1000
	ErrNotFound
	ErrUnauthorized
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error code to the status the API exposes. Not-found
// conditions are surfaced as 400 on purpose; existing clients depend on it.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrValidation, ErrNotFound:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports a missing or malformed required field.
func Validation(field string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: fmt.Sprintf("O campo %s é obrigatório", field),
	}
}

// ValidationMsg reports a validation failure with a custom message.
func ValidationMsg(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s não encontrado(a)", resource),
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    ErrUnauthorized,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "Internal Server Error.",
		Err:     err,
	}
}

// AsAppError unwraps err into an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrNotFound
}

func IsValidation(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == ErrValidation
}
