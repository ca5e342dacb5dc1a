package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error onto a status code and client-safe message.
//
// "resource" names the entity in 404 messages, e.g. "idea" gives "idea not found".
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		h.respondError(w, http.StatusUnauthorized, detail(err, models.ErrUnauthenticated, models.ErrUnauthenticated.Error()))
	case errors.Is(err, models.ErrForbidden):
		h.respondError(w, http.StatusForbidden, detail(err, models.ErrForbidden, "operation not permitted"))
	case errors.Is(err, models.ErrConflict):
		h.respondError(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, models.ErrValidation):
		h.respondError(w, http.StatusUnprocessableEntity, detail(err, models.ErrValidation, models.ErrValidation.Error()))
	default:
		h.logger.Error("unexpected service error", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// detail returns the text a service attached after "sentinel: ", or fallback
func detail(err, sentinel error, fallback string) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return fallback
}

// pathID parses the {id} URL parameter
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}
