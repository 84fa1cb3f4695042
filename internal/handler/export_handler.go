package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"fhsis/internal/domain"
	"fhsis/internal/formexport"
	"fhsis/internal/service"
)

// ExportHandler streams consolidated reports as fixed-layout workbooks.
type ExportHandler struct {
	reportService service.ReportService
	lookupService service.LookupService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(reportService service.ReportService, lookupService service.LookupService) *ExportHandler {
	return &ExportHandler{reportService: reportService, lookupService: lookupService}
}

// parseExportQuery reads the period query params shared by both exports.
func (h *ExportHandler) parseExportQuery(c *gin.Context) (domain.ReportPeriodFilter, formexport.Meta, bool) {
	var filter domain.ReportPeriodFilter
	var meta formexport.Meta

	month, err := strconv.Atoi(c.Query("report_month"))
	if err != nil || month < 1 || month > 12 {
		RespondError(c, http.StatusUnprocessableEntity, "report_month must be an integer between 1 and 12")
		return filter, meta, false
	}
	year, err := strconv.Atoi(c.Query("report_year"))
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "report_year must be an integer")
		return filter, meta, false
	}

	filter.ReportMonth = month
	filter.ReportYear = year
	meta.ReportMonth = month
	meta.ReportYear = year

	if bidStr := c.Query("barangay_id"); bidStr != "" {
		bid, err := strconv.ParseInt(bidStr, 10, 64)
		if err != nil {
			RespondError(c, http.StatusUnprocessableEntity, "barangay_id must be an integer")
			return filter, meta, false
		}
		filter.BarangayID = &bid

		if barangays, err := h.lookupService.Barangays(c.Request.Context()); err == nil {
			for _, b := range barangays {
				if b.ID == bid {
					meta.BarangayName = b.Name
					break
				}
			}
		}
	}

	return filter, meta, true
}

// ExportM1 handles GET /api/reports/m1/export
// @Summary      Export the M1 form as an Excel workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        report_month query int true "Report month (1-12)"
// @Param        report_year query int true "Report year"
// @Param        barangay_id query int false "Barangay id"
// @Success      200 {file} binary
// @Security     BearerAuth
// @Router       /reports/m1/export [get]
func (h *ExportHandler) ExportM1(c *gin.Context) {
	filter, meta, ok := h.parseExportQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	fp, err := h.reportService.FamilyPlanning(ctx, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	wra, err := h.reportService.WRA(ctx, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	services, err := h.reportService.ServiceData(ctx, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := formexport.BuildM1Workbook(meta, fp, wra, services)
	if err != nil {
		HandleError(c, err)
		return
	}
	h.sendWorkbook(c, workbook, formexport.BuildFilename("M1", meta))
}

// ExportM2 handles GET /api/reports/m2/export
// @Summary      Export the M2 morbidity form as an Excel workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        report_month query int true "Report month (1-12)"
// @Param        report_year query int true "Report year"
// @Param        barangay_id query int false "Barangay id"
// @Success      200 {file} binary
// @Security     BearerAuth
// @Router       /reports/m2/export [get]
func (h *ExportHandler) ExportM2(c *gin.Context) {
	filter, meta, ok := h.parseExportQuery(c)
	if !ok {
		return
	}

	diseases, err := h.reportService.Morbidity(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := formexport.BuildM2Workbook(meta, diseases)
	if err != nil {
		HandleError(c, err)
		return
	}
	h.sendWorkbook(c, workbook, formexport.BuildFilename("M2", meta))
}

func (h *ExportHandler) sendWorkbook(c *gin.Context, workbook *excelize.File, filename string) {
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
