package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fhsis/internal/domain"
	"fhsis/internal/middleware"
	"fhsis/internal/service"
)

// ReportStatusHandler handles the submit workflow and the admin review
// endpoints around report statuses.
type ReportStatusHandler struct {
	submissionService service.SubmissionService
}

// NewReportStatusHandler creates a new ReportStatusHandler.
func NewReportStatusHandler(submissionService service.SubmissionService) *ReportStatusHandler {
	return &ReportStatusHandler{submissionService: submissionService}
}

// Submit handles POST /api/statuses/submit/report
// @Summary      Submit the composite monthly report
// @Description  Validates, resolves and persists the M1 and M2 sections atomically
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Success      201 {object} map[string]string
// @Failure      400 {object} APIErrorResponse
// @Failure      422 {object} APIErrorResponse
// @Failure      500 {object} APIErrorResponse
// @Security     BearerAuth
// @Router       /statuses/submit/report [post]
func (h *ReportStatusHandler) Submit(c *gin.Context) {
	var payload domain.SubmitReportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "malformed request body")
		return
	}

	if err := h.submissionService.SubmitReport(c.Request.Context(), &payload); err != nil {
		HandleError(c, err)
		return
	}

	RespondMessage(c, http.StatusCreated, "Data processed successfully.")
}

// openPeriodRequest selects the period an encoder is about to fill in.
type openPeriodRequest struct {
	BarangayID  int64 `json:"barangay_id" binding:"required"`
	ReportMonth int   `json:"report_month" binding:"required,min=1,max=12"`
	ReportYear  int   `json:"report_year" binding:"required"`
}

// Open handles POST /api/statuses/open
// @Summary      Open a reporting period
// @Description  Finds or creates the pending M1 and M2 submissions and returns their report ids
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIErrorResponse
// @Security     BearerAuth
// @Router       /statuses/open [post]
func (h *ReportStatusHandler) Open(c *gin.Context) {
	var req openPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := h.submissionService.OpenPeriod(c.Request.Context(), req.BarangayID, req.ReportMonth, req.ReportYear)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// CreateTemplate handles POST /api/submission-templates
// @Summary      Create a reporting obligation
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Success      201 {object} APIResponse
// @Failure      409 {object} APIErrorResponse
// @Security     BearerAuth
// @Router       /submission-templates [post]
func (h *ReportStatusHandler) CreateTemplate(c *gin.Context) {
	var input service.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tpl, err := h.submissionService.CreateTemplate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tpl)
}

// Overview handles GET /api/submissions
// @Summary      List submissions for a period
// @Tags         statuses
// @Produce      json
// @Param        report_month query int true "Report month (1-12)"
// @Param        report_year query int true "Report year"
// @Param        barangay_id query int false "Barangay id"
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /submissions [get]
func (h *ReportStatusHandler) Overview(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("report_month"))
	if err != nil || month < 1 || month > 12 {
		RespondError(c, http.StatusUnprocessableEntity, "report_month must be an integer between 1 and 12")
		return
	}
	year, err := strconv.Atoi(c.Query("report_year"))
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "report_year must be an integer")
		return
	}

	var barangayID *int64
	if bidStr := c.Query("barangay_id"); bidStr != "" {
		bid, err := strconv.ParseInt(bidStr, 10, 64)
		if err != nil {
			RespondError(c, http.StatusUnprocessableEntity, "barangay_id must be an integer")
			return
		}
		barangayID = &bid
	}

	rows, err := h.submissionService.ListOverview(c.Request.Context(), barangayID, month, year)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rows)
}

// approvalRequest sets the content-review outcome for a report status.
type approvalRequest struct {
	Approval string `json:"approval" binding:"required,oneof=approved rejected pending"`
}

// SetApproval handles PATCH /api/statuses/:id/approval
// @Summary      Approve or reject submitted report content
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIErrorResponse
// @Security     BearerAuth
// @Router       /statuses/{id}/approval [patch]
func (h *ReportStatusHandler) SetApproval(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	reviewerID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	if err := h.submissionService.SetApproval(c.Request.Context(), id, domain.ApprovalStatus(req.Approval), reviewerID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"report_status_id": id, "approval": req.Approval})
}
