package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/handler"
	"fhsis/internal/service"
	"fhsis/mocks"
)

func reportRouter(svc service.ReportService) *gin.Engine {
	h := handler.NewReportHandler(svc)
	r := gin.New()
	r.POST("/api/wra-reports", h.WRAFlat)
	r.POST("/api/wra-reports/filtered", h.WRAFiltered)
	r.POST("/api/family-planning-reports/filtered", h.FamilyPlanningFiltered)
	r.POST("/api/service-data-reports", h.ServiceData)
	r.POST("/api/morbidity-reports/filtered", h.MorbidityFiltered)
	return r
}

func TestFilteredReports_MissingPeriodNamesBothFields(t *testing.T) {
	svc := new(mocks.MockReportService)
	r := reportRouter(svc)

	for _, path := range []string{
		"/api/wra-reports/filtered",
		"/api/family-planning-reports/filtered",
		"/api/service-data-reports",
		"/api/morbidity-reports/filtered",
	} {
		w := performJSON(r, http.MethodPost, path, gin.H{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, path)

		var body struct {
			Status  string              `json:"status"`
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), path)
		assert.Equal(t, "error", body.Status, path)
		assert.Equal(t, "The report_month field is required. (and 1 more errors)", body.Message, path)
		assert.Contains(t, body.Errors, "report_month", path)
		assert.Contains(t, body.Errors, "report_year", path)
	}

	svc.AssertNotCalled(t, "WRA", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Morbidity", mock.Anything, mock.Anything)
}

func TestWRAFiltered_Success(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("WRA", mock.Anything, mock.MatchedBy(func(f domain.ReportPeriodFilter) bool {
		return f.BarangayID != nil && *f.BarangayID == 5 && f.ReportMonth == 6 && f.ReportYear == 2025
	})).Return(&domain.WRAReport{
		AgeCategories: map[string]int{"10-14": 2, "15-19": 3, "20-49": 5},
		Total:         10,
		Age15To49:     8,
	}, nil)

	w := performJSON(reportRouter(svc), http.MethodPost, "/api/wra-reports/filtered", gin.H{
		"barangay_id": 5, "report_month": 6, "report_year": 2025,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Total     int `json:"total"`
			Age15To49 int `json:"15-49"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 10, body.Data.Total)
	assert.Equal(t, 8, body.Data.Age15To49)
}

func TestWRAFiltered_MunicipalityWideWithoutBarangay(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("WRA", mock.Anything, mock.MatchedBy(func(f domain.ReportPeriodFilter) bool {
		return f.BarangayID == nil && f.ReportMonth == 6 && f.ReportYear == 2025
	})).Return(&domain.WRAReport{AgeCategories: map[string]int{}}, nil)

	w := performJSON(reportRouter(svc), http.MethodPost, "/api/wra-reports/filtered", gin.H{
		"report_month": 6, "report_year": 2025,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestMorbidityFiltered_Success(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("Morbidity", mock.Anything, mock.Anything).Return([]domain.DiseaseReport{
		{DiseaseID: 7, DiseaseName: "Dengue", AgeCategories: map[string]domain.MorbidityCell{
			"10-14": {M: 3, F: 1},
			"Total": {M: 3, F: 1},
		}},
	}, nil)

	w := performJSON(reportRouter(svc), http.MethodPost, "/api/morbidity-reports/filtered", gin.H{
		"report_month": 6, "report_year": 2025,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			DiseaseName   string                          `json:"disease_name"`
			AgeCategories map[string]domain.MorbidityCell `json:"age_categories"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, domain.MorbidityCell{M: 3, F: 1}, body.Data[0].AgeCategories["Total"])
}

func TestWRAFlat_PassesFilter(t *testing.T) {
	svc := new(mocks.MockReportService)
	svc.On("WRAFlat", mock.Anything, domain.FlatRowFilter{BarangayName: "Poblacion", Year: 2025}).
		Return([]domain.WRAFlatRow{{ID: 1, BarangayName: "Poblacion", AgeCategory: "10-14"}}, nil)

	w := performJSON(reportRouter(svc), http.MethodPost, "/api/wra-reports", gin.H{
		"barangayName": "Poblacion", "year": 2025,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
