package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ideaboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func itoa(i int) string { return strconv.Itoa(i) }

func TestBaseHandler_RespondServiceError(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	h := &BaseHandler{logger: logger}

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "unauthenticated",
			err:             models.ErrUnauthenticated,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "not authenticated",
		},
		{
			name:            "forbidden with detail",
			err:             fmt.Errorf("%w: admins cannot be deleted", models.ErrForbidden),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "admins cannot be deleted",
		},
		{
			name:            "forbidden without detail",
			err:             models.ErrForbidden,
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "operation not permitted",
		},
		{
			name:            "conflict",
			err:             fmt.Errorf("user x: %w", models.ErrConflict),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email already registered",
		},
		{
			name:            "not found",
			err:             fmt.Errorf("idea not found: idea 3: %w", models.ErrNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "thing not found",
		},
		{
			name:            "validation",
			err:             fmt.Errorf("%w: skip must not be negative", models.ErrValidation),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "skip must not be negative",
		},
		{
			name:            "internal details are hidden",
			err:             errors.New("dial tcp 10.0.0.1:3306: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			h.respondServiceError(w, tt.err, "thing")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedMessage, decodeError(t, w))
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
	}{
		{name: "database reachable", expectedStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(fakePinger{err: tt.pingErr}, logger)
			w := httptest.NewRecorder()

			h.Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
