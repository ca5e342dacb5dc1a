package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/backend/internal/auth/middleware"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user directory business logic.
type UserService interface {
	// Method Register validates the request and creates a regular user.
	//
	// Invalid input returns an error wrapping models.ErrValidation,
	// an already registered email one wrapping models.ErrConflict.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Method GetUsersList retrieves every user.
	GetUsersList(ctx context.Context) ([]models.User, error)
	// Method DeleteUser deletes a user on behalf of caller.
	//
	// Non-admin callers and admin targets get models.ErrForbidden, a missing target models.ErrNotFound.
	DeleteUser(ctx context.Context, caller *models.User, userID int) error
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes.
// Registration is public, everything else goes through authMiddleware.
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/", h.List)
			r.Get("/me", h.GetMe)
			r.With(middleware.AdminMiddleware).Delete("/{id}", h.Delete)
		})
	})
}

// Register handles POST /users/
// @Summary Register a new user
// @Description Create a regular user account. Name defaults to the email local part.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "Email already registered"
// @Failure 422 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/ [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// GetMe handles GET /users/me
// @Summary Get current user
// @Description Get the user the bearer token belongs to
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Not authenticated"
// @Router /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, models.ErrUnauthenticated.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// List handles GET /users/
// @Summary List users
// @Description Get every registered user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/ [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsersList(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "user")
		return
	}

	h.respondJSON(w, http.StatusOK, users)
}

// Delete handles DELETE /users/{id}
// @Summary Delete a user
// @Description Delete a regular user and their ideas. Admin only; admins cannot be deleted.
// @Tags users
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 403 {object} map[string]string "Operation not permitted or target is an admin"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 422 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	caller, _ := middleware.GetUser(r.Context())
	if err := h.userService.DeleteUser(r.Context(), caller, userID); err != nil {
		h.respondServiceError(w, err, "user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
