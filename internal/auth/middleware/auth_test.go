package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockUserResolver is a mock implementation of UserResolver
type mockUserResolver struct {
	users map[string]*models.User
	err   error
}

func (m *mockUserResolver) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	return user, nil
}

func newTestTokenGenerator() *service.TokenGenerator {
	return service.NewTokenGenerator("test-secret", 30*time.Minute)
}

// echoUserHandler writes the resolved user's email so tests can check the context
func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(user.Email))
	})
}

func TestAuthMiddleware(t *testing.T) {
	logger := zap.NewNop()
	tg := newTestTokenGenerator()
	resolver := &mockUserResolver{users: map[string]*models.User{
		"a@x.com": {ID: 1, Email: "a@x.com"},
	}}

	validToken, err := tg.GenerateAccessToken("a@x.com")
	require.NoError(t, err)
	deletedUserToken, err := tg.GenerateAccessToken("gone@x.com")
	require.NoError(t, err)
	expiredToken, err := service.NewTokenGenerator("test-secret", -time.Minute).GenerateAccessToken("a@x.com")
	require.NoError(t, err)
	foreignToken, err := service.NewTokenGenerator("other-secret", 30*time.Minute).GenerateAccessToken("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		resolver       UserResolver
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			resolver:       resolver,
			expectedStatus: http.StatusOK,
			expectedBody:   "a@x.com",
		},
		{
			name:           "lowercase scheme",
			authHeader:     "bearer " + validToken,
			resolver:       resolver,
			expectedStatus: http.StatusOK,
			expectedBody:   "a@x.com",
		},
		{
			name:           "missing header",
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic " + validToken,
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "no token after scheme",
			authHeader:     "Bearer",
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + expiredToken,
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "token signed with another secret",
			authHeader:     "Bearer " + foreignToken,
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "token for deleted user",
			authHeader:     "Bearer " + deletedUserToken,
			resolver:       resolver,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"not authenticated"}`,
		},
		{
			name:           "resolver failure",
			authHeader:     "Bearer " + validToken,
			resolver:       &mockUserResolver{err: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tg, tt.resolver, logger)(echoUserHandler(t))

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		user           *models.User
		expectedStatus int
	}{
		{name: "admin", user: &models.User{ID: 1, Email: "admin@x.com", IsAdmin: true}, expectedStatus: http.StatusOK},
		{name: "regular user", user: &models.User{ID: 2, Email: "a@x.com"}, expectedStatus: http.StatusForbidden},
		{name: "no user in context", user: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminMiddleware(echoUserHandler(t))

			req := httptest.NewRequest(http.MethodDelete, "/users/5", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUser(t *testing.T) {
	_, ok := GetUser(context.Background())
	assert.False(t, ok)

	user := &models.User{ID: 3}
	got, ok := GetUser(WithUser(context.Background(), user))
	assert.True(t, ok)
	assert.Same(t, user, got)
}
