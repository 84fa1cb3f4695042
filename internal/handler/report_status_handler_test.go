package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fhsis/internal/domain"
	"fhsis/internal/handler"
	"fhsis/internal/service"
	"fhsis/internal/validator"
	"fhsis/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func statusRouter(svc service.SubmissionService) *gin.Engine {
	h := handler.NewReportStatusHandler(svc)
	r := gin.New()
	r.POST("/api/statuses/submit/report", h.Submit)
	r.POST("/api/statuses/open", h.Open)
	r.GET("/api/submissions", h.Overview)
	return r
}

func TestSubmit_Success(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitReport", mock.Anything, mock.AnythingOfType("*domain.SubmitReportPayload")).Return(nil)

	w := performJSON(statusRouter(svc), http.MethodPost, "/api/statuses/submit/report", gin.H{
		"m2ReportId": 12,
		"m2Report": []gin.H{{
			"disease_id": 7, "disease_name": "Dengue", "age_category_id": 2, "male": 3, "female": 1,
		}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Data processed successfully.", body["message"])
}

func TestSubmit_AlreadySubmitted(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("SubmitReport", mock.Anything, mock.Anything).Return(domain.ErrAlreadySubmitted)

	w := performJSON(statusRouter(svc), http.MethodPost, "/api/statuses/submit/report", gin.H{
		"m2ReportId": 12,
		"m2Report":   []gin.H{{"disease_id": 7, "disease_name": "Dengue", "age_category_id": 2, "male": 3, "female": 1}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "already submitted")
}

func TestSubmit_ValidationErrorShape(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	errs := validator.NewFieldErrors()
	errs.Add("m1Report.familyplanning.0.age_category",
		"The m1Report.familyplanning.0.age_category field is required")
	errs.Add("m1Report.familyplanning.0.fp_method_id",
		"The m1Report.familyplanning.0.fp_method_id field is required")
	svc.On("SubmitReport", mock.Anything, mock.Anything).Return(validator.NewError(errs))

	w := performJSON(statusRouter(svc), http.MethodPost, "/api/statuses/submit/report", gin.H{
		"m1ReportId": 11,
		"m1Report":   gin.H{"familyplanning": []gin.H{{}}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Status  string              `json:"status"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t,
		"The m1Report.familyplanning.0.age_category field is required. (and 1 more errors)",
		body.Message)
	assert.Len(t, body.Errors, 2)
	assert.Contains(t, body.Errors, "m1Report.familyplanning.0.fp_method_id")
}

func TestSubmit_MalformedBody(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	r := statusRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/statuses/submit/report",
		bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "SubmitReport", mock.Anything, mock.Anything)
}

func TestOpen_ReturnsReportIDs(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("OpenPeriod", mock.Anything, int64(5), 6, 2025).Return(&service.OpenPeriodResult{
		M1ReportID: 11, M2ReportID: 12,
		M1Status: domain.SubmissionPending, M2Status: domain.SubmissionPending,
	}, nil)

	w := performJSON(statusRouter(svc), http.MethodPost, "/api/statuses/open", gin.H{
		"barangay_id": 5, "report_month": 6, "report_year": 2025,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			M1ReportID int64 `json:"m1ReportId"`
			M2ReportID int64 `json:"m2ReportId"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, int64(11), body.Data.M1ReportID)
	assert.Equal(t, int64(12), body.Data.M2ReportID)
}

func TestOpen_NoTemplate(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("OpenPeriod", mock.Anything, int64(5), 6, 2025).Return(nil, domain.ErrNotFound)

	w := performJSON(statusRouter(svc), http.MethodPost, "/api/statuses/open", gin.H{
		"barangay_id": 5, "report_month": 6, "report_year": 2025,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOverview_RequiresPeriodParams(t *testing.T) {
	svc := new(mocks.MockSubmissionService)

	w := performJSON(statusRouter(svc), http.MethodGet, "/api/submissions", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "ListOverview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOverview_FiltersByBarangay(t *testing.T) {
	svc := new(mocks.MockSubmissionService)
	svc.On("ListOverview", mock.Anything, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 5
	}), 6, 2025).Return([]domain.SubmissionOverviewRow{
		{SubmissionID: 1, BarangayName: "Poblacion", FormType: domain.FormM1, Status: domain.SubmissionSubmitted},
	}, nil)

	w := performJSON(statusRouter(svc), http.MethodGet,
		"/api/submissions?report_month=6&report_year=2025&barangay_id=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
