package consultation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dougladias/vida-plena-api/internal/handler"
	"github.com/dougladias/vida-plena-api/internal/model"
	"github.com/dougladias/vida-plena-api/internal/service/consultation"
)

type Handler struct {
	svc consultation.ConsultationService
}

func NewHandler(svc consultation.ConsultationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	consultations := r.Group("/consultation")
	{
		consultations.POST("", h.CreateConsultation)
		consultations.GET("", h.ListConsultations)
		consultations.GET("/:id", h.GetConsultation)
		consultations.PUT("/:id", h.UpdateConsultation)
		consultations.DELETE("/:id", h.DeleteConsultation)
	}
}

func (h *Handler) CreateConsultation(c *gin.Context) {
	var req model.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	created, err := h.svc.CreateConsultation(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListConsultations(c *gin.Context) {
	consultations, err := h.svc.ListConsultations(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultations)
}

func (h *Handler) GetConsultation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("ID inválido"))
		return
	}

	found, err := h.svc.GetConsultation(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (h *Handler) UpdateConsultation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("ID inválido"))
		return
	}

	var req model.UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	updated, err := h.svc.UpdateConsultation(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteConsultation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("ID inválido"))
		return
	}

	if err := h.svc.DeleteConsultation(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consulta removida com sucesso"})
}
