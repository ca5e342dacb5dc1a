package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login checks an email and password and returns a bearer access token.
	//
	// "req" parameter carries the email in Username, as the OAuth2 password form does.
	//
	// Unknown email and wrong password both return an error wrapping models.ErrUnauthenticated.
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

// AuthHandler handles token issuing HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/token", h.Login)
}

// Login handles POST /token
// @Summary Log in
// @Description Exchange an email and password for a bearer access token valid for 30 minutes
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "User email"
// @Param password formData string true "User password"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} map[string]string "Incorrect email or password"
// @Failure 422 {object} map[string]string "Missing form fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid form body")
		return
	}

	req := &models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "user")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
