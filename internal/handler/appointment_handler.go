package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fhsis/internal/domain"
	"fhsis/internal/service"
)

// AppointmentHandler handles citizen appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Book handles POST /api/appointments
// @Summary      Book an appointment
// @Description  Resolves the category by name; unknown categories are rejected
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Success      201 {object} APIResponse
// @Failure      404 {object} APIErrorResponse
// @Failure      422 {object} APIErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var input service.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	appt, err := h.appointmentService.Book(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, appt)
}

// List handles GET /api/appointments
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        page_size query int false "Page size (max 100)"
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	appts, total, err := h.appointmentService.List(c.Request.Context(), (page-1)*pageSize, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"appointments": appts,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

type appointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/appointments/:id/status
// @Summary      Update an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIErrorResponse
// @Security     BearerAuth
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	var req appointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "status is required")
		return
	}
	status, ok := domain.ValidAppointmentStatuses[req.Status]
	if !ok {
		RespondError(c, http.StatusUnprocessableEntity, "status must be one of pending, confirmed, completed, cancelled")
		return
	}

	appt, err := h.appointmentService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, appt)
}

// Categories handles GET /api/appointment-categories
// @Summary      List bookable appointment categories
// @Tags         appointments
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /appointment-categories [get]
func (h *AppointmentHandler) Categories(c *gin.Context) {
	cats, err := h.appointmentService.ListCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cats)
}
