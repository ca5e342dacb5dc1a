package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/backend/internal/auth/middleware"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// IdeaService is the interface that wraps methods for idea business logic.
type IdeaService interface {
	// Method CreateIdea stores a new idea owned by caller.
	//
	// Empty or too long content returns an error wrapping models.ErrValidation.
	CreateIdea(ctx context.Context, caller *models.User, req *models.CreateIdeaRequest) (*models.Idea, error)
	// Method ListIdeas lists ideas visible to caller, newest first.
	//
	// Admins see every idea, other users only their own.
	ListIdeas(ctx context.Context, caller *models.User, skip, limit int) ([]models.Idea, error)
	// Method DeleteIdea deletes an idea owned by caller, or any idea when caller is an admin.
	DeleteIdea(ctx context.Context, caller *models.User, ideaID int) error
}

// IdeaHandler handles idea-related HTTP requests
type IdeaHandler struct {
	BaseHandler
	ideaService IdeaService
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService IdeaService, logger *zap.Logger) *IdeaHandler {
	return &IdeaHandler{
		BaseHandler: BaseHandler{logger: logger},
		ideaService: ideaService,
	}
}

// RegisterRoutes registers all idea handler routes behind authMiddleware
func (h *IdeaHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/ideas", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /ideas/
// @Summary Create an idea
// @Description Post a new idea owned by the caller
// @Tags ideas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateIdeaRequest true "Idea content, at most 1000 characters"
// @Success 200 {object} models.Idea
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 422 {object} map[string]string "Invalid idea"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ideas/ [post]
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	caller, _ := middleware.GetUser(r.Context())
	idea, err := h.ideaService.CreateIdea(r.Context(), caller, &req)
	if err != nil {
		h.respondServiceError(w, err, "user")
		return
	}

	h.respondJSON(w, http.StatusOK, idea)
}

// List handles GET /ideas/
// @Summary List ideas
// @Description Admins get every idea, other users only their own. Newest first.
// @Tags ideas
// @Produce json
// @Security ApiKeyAuth
// @Param skip query int false "Number of ideas to skip, default: 0"
// @Param limit query int false "Maximum number of ideas, default: 100, max: 1000"
// @Success 200 {array} models.Idea
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 422 {object} map[string]string "Invalid skip or limit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ideas/ [get]
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, ok := h.queryInt(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := h.queryInt(w, r, "limit", models.DefaultIdeaLimit)
	if !ok {
		return
	}

	caller, _ := middleware.GetUser(r.Context())
	ideas, err := h.ideaService.ListIdeas(r.Context(), caller, skip, limit)
	if err != nil {
		h.respondServiceError(w, err, "idea")
		return
	}

	h.respondJSON(w, http.StatusOK, ideas)
}

// Delete handles DELETE /ideas/{id}
// @Summary Delete an idea
// @Description Delete an idea the caller owns. Admins may delete any idea.
// @Tags ideas
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} map[string]string "Not authenticated"
// @Failure 403 {object} map[string]string "Not authorized to delete this idea"
// @Failure 404 {object} map[string]string "Idea not found"
// @Failure 422 {object} map[string]string "Invalid id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ideaID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	caller, _ := middleware.GetUser(r.Context())
	if err := h.ideaService.DeleteIdea(r.Context(), caller, ideaID); err != nil {
		h.respondServiceError(w, err, "idea")
		return
	}

	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "Idea deleted successfully"})
}

// queryInt reads an optional integer query parameter, answering 422 when it is not an integer
func (h *IdeaHandler) queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, name+" must be an integer")
		return 0, false
	}
	return v, true
}
