package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/dougladias/vida-plena-api/pkg/errors"
)

// ErrorResponse is the error envelope every 4xx/5xx response uses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// RespondError translates a service error into the HTTP envelope. Unknown
// errors become a generic 500 so internals never leak.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal Server Error."))
}

// BindError maps a gin binding failure onto the same message shape the
// services produce, naming the first offending field.
func BindError(c *gin.Context, err error) {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		field := jsonFieldName(first.Field())
		if first.Tag() == "required" {
			c.JSON(http.StatusBadRequest, NewErrorResponse("O campo "+field+" é obrigatório"))
			return
		}
		c.JSON(http.StatusBadRequest, NewErrorResponse("O campo "+field+" é inválido"))
		return
	}
	c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
}

// jsonFieldName lowers a struct field name to its wire spelling. The models
// register tag-name lookup at startup; this is the fallback.
func jsonFieldName(field string) string {
	switch field {
	case "DateBirth":
		return "date_birth"
	case "PatientID":
		return "patient_id"
	case "DoctorID":
		return "doctor_id"
	case "ConsultationID":
		return "consultation_id"
	case "CPF":
		return "cpf"
	case "CRM":
		return "crm"
	default:
		b := []byte(field)
		if len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z' {
			b[0] += 'a' - 'A'
		}
		return string(b)
	}
}
