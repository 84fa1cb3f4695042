package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fhsis/internal/domain"
	"fhsis/internal/service"
	"fhsis/internal/validator"
)

// ReportHandler handles the filtered and flat report read endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// bindPeriodFilter decodes and validates the common filtered-report body,
// reporting every missing field in one 422.
func bindPeriodFilter(c *gin.Context) (*domain.ReportPeriodFilter, bool) {
	var filter domain.ReportPeriodFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "malformed request body")
		return nil, false
	}
	if errs := validator.ValidatePeriodFilter(&filter); !errs.Empty() {
		RespondValidation(c, errs)
		return nil, false
	}
	return &filter, true
}

// FamilyPlanningFiltered handles POST /api/family-planning-reports/filtered
// @Summary      Family planning report for one period
// @Description  Flat FP rows regrouped by method with per-age-category totals
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      422 {object} APIErrorResponse
// @Router       /family-planning-reports/filtered [post]
func (h *ReportHandler) FamilyPlanningFiltered(c *gin.Context) {
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.FamilyPlanning(c.Request.Context(), *filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// WRAFiltered handles POST /api/wra-reports/filtered
// @Summary      Women-of-reproductive-age report for one period
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      422 {object} APIErrorResponse
// @Router       /wra-reports/filtered [post]
func (h *ReportHandler) WRAFiltered(c *gin.Context) {
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.WRA(c.Request.Context(), *filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ServiceData handles POST /api/service-data-reports
// @Summary      Service data report for one period
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      422 {object} APIErrorResponse
// @Router       /service-data-reports [post]
func (h *ReportHandler) ServiceData(c *gin.Context) {
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.ServiceData(c.Request.Context(), *filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// MorbidityFiltered handles POST /api/morbidity-reports/filtered
// @Summary      Morbidity report for one period
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      422 {object} APIErrorResponse
// @Router       /morbidity-reports/filtered [post]
func (h *ReportHandler) MorbidityFiltered(c *gin.Context) {
	filter, ok := bindPeriodFilter(c)
	if !ok {
		return
	}

	report, err := h.reportService.Morbidity(c.Request.Context(), *filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// FamilyPlanningFlat handles POST /api/family-planning-reports
// @Summary      Flat family planning row listing
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /family-planning-reports [post]
func (h *ReportHandler) FamilyPlanningFlat(c *gin.Context) {
	var filter domain.FlatRowFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "malformed request body")
		return
	}

	rows, err := h.reportService.FamilyPlanningFlat(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// WRAFlat handles POST /api/wra-reports
// @Summary      Flat WRA row listing
// @Tags         reports
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Router       /wra-reports [post]
func (h *ReportHandler) WRAFlat(c *gin.Context) {
	var filter domain.FlatRowFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "malformed request body")
		return
	}

	rows, err := h.reportService.WRAFlat(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}
