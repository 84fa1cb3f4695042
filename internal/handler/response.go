package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fhsis/internal/domain"
	"fhsis/internal/middleware"
	"fhsis/internal/validator"
)

// APIResponse is the standard envelope for success payloads.
type APIResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

// APIErrorResponse is the envelope for failures. Errors carries per-field
// messages for validation failures and is omitted otherwise.
type APIErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Status: "success", Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Status: "success", Data: data})
}

// RespondMessage sends a bare message body, used by the submit endpoint.
func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, APIErrorResponse{Status: "error", Message: msg})
}

// RespondValidation sends a 422 enumerating every violated field at once.
func RespondValidation(c *gin.Context, fields *validator.FieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, APIErrorResponse{
		Status:  "error",
		Message: fields.Message(),
		Errors:  fields.Fields(),
	})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusBadRequest, "report already submitted for this period"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "appointment category not found"
	case errors.Is(err, domain.ErrBarangayNotFound):
		return http.StatusNotFound, "barangay not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "user is inactive"
	case errors.Is(err, domain.ErrDuplicateTemplate):
		return http.StatusConflict, "submission template already exists for this barangay and period"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "email already exists"
	case errors.Is(err, domain.ErrSubmissionNotPending):
		return http.StatusBadRequest, "submission is not in a reviewable state"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps an error and sends the appropriate error response.
// Validation errors carry their aggregated field map; everything else goes
// through the domain error mapping.
func HandleError(c *gin.Context, err error) {
	var vErr *validator.Error
	if errors.As(err, &vErr) {
		RespondValidation(c, vErr.Fields())
		return
	}

	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		log.Printf("request_id=%v internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
