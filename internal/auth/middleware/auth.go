package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// TokenValidator verifies an access token and returns its subject email
type TokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// UserResolver looks up the user a verified token refers to.
// It must return an error wrapping models.ErrNotFound when no such user exists.
type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type contextKey string

const userKey contextKey = "user"

// AuthMiddleware validates the bearer access token and resolves it to a user.
// Missing, invalid or expired tokens and tokens for deleted users all get the same 401.
func AuthMiddleware(tokens TokenValidator, users UserResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				respondUnauthenticated(w)
				return
			}

			email, err := tokens.ValidateAccessToken(token)
			if err != nil {
				respondUnauthenticated(w)
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					respondUnauthenticated(w)
					return
				}
				logger.Error("failed to resolve token subject", zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"internal server error"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// AdminMiddleware rejects callers without the admin flag.
// It must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			respondUnauthenticated(w)
			return
		}

		if !user.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"operation not permitted"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithUser returns a copy of ctx carrying the authenticated user
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the authenticated user from context
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// extractBearerToken reads "Authorization: Bearer <token>", the scheme is case-insensitive
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}

func respondUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"not authenticated"}`))
}
