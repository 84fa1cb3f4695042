package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fhsis/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/login
// @Summary      Authenticate a health-office user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      401 {object} APIErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokens)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /api/refresh
// @Summary      Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} APIResponse
// @Failure      401 {object} APIErrorResponse
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "refresh_token is required")
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokens)
}

// Logout handles POST /api/logout
// @Summary      End the session
// @Description  Tokens are stateless; the client discards them on logout
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string
// @Security     BearerAuth
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	RespondMessage(c, http.StatusOK, "Logged out successfully.")
}
