package handler

import (
	"github.com/gin-gonic/gin"

	"fhsis/internal/service"
)

// LookupHandler serves the reference tables the report forms bind to.
type LookupHandler struct {
	lookupService service.LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// Barangays handles GET /api/barangays
// @Summary      List barangays
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /barangays [get]
func (h *LookupHandler) Barangays(c *gin.Context) {
	rows, err := h.lookupService.Barangays(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// AgeCategories handles GET /api/age-categories
// @Summary      List age categories
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /age-categories [get]
func (h *LookupHandler) AgeCategories(c *gin.Context) {
	rows, err := h.lookupService.AgeCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// FPMethods handles GET /api/fp-methods
// @Summary      List family planning methods
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /fp-methods [get]
func (h *LookupHandler) FPMethods(c *gin.Context) {
	rows, err := h.lookupService.FPMethods(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Services handles GET /api/services
// @Summary      List health services
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /services [get]
func (h *LookupHandler) Services(c *gin.Context) {
	rows, err := h.lookupService.Services(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Diseases handles GET /api/diseases
// @Summary      List notifiable diseases
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /diseases [get]
func (h *LookupHandler) Diseases(c *gin.Context) {
	rows, err := h.lookupService.Diseases(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Indicators handles GET /api/indicators
// @Summary      List service indicators as a tree
// @Tags         lookups
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /indicators [get]
func (h *LookupHandler) Indicators(c *gin.Context) {
	tree, err := h.lookupService.IndicatorTree(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tree)
}
