package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/backend/internal/auth/middleware"
	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/models"
	"github.com/ideaboard/backend/internal/services"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// memDB is an in-memory stand-in for the users and ideas tables.
// Deleting a user deletes their ideas, like the foreign key does.
type memDB struct {
	mu         sync.Mutex
	users      map[int]models.User
	ideas      map[int]models.Idea
	nextUserID int
	nextIdeaID int
}

func newMemDB() *memDB {
	return &memDB{
		users:      map[int]models.User{},
		ideas:      map[int]models.Idea{},
		nextUserID: 1,
		nextIdeaID: 1,
	}
}

type memUserRepo struct{ db *memDB }

func (r memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s: %w", user.Email, models.ErrConflict)
		}
	}
	user.ID = r.db.nextUserID
	r.db.nextUserID++
	r.db.users[user.ID] = *user
	return nil
}

func (r memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
}

func (r memUserRepo) GetByID(ctx context.Context, userID int) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	return &u, nil
}

func (r memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r memUserRepo) List(ctx context.Context) ([]models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	users := make([]models.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r memUserRepo) Delete(ctx context.Context, userID int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[userID]
	if !ok || u.IsAdmin {
		return fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	delete(r.db.users, userID)
	for id, idea := range r.db.ideas {
		if idea.UserID == userID {
			delete(r.db.ideas, id)
		}
	}
	return nil
}

type memIdeaRepo struct{ db *memDB }

func (r memIdeaRepo) Create(ctx context.Context, idea *models.Idea) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[idea.UserID]; !ok {
		return fmt.Errorf("owner %d: %w", idea.UserID, models.ErrNotFound)
	}
	idea.ID = r.db.nextIdeaID
	r.db.nextIdeaID++
	stored := *idea
	stored.User = nil
	r.db.ideas[idea.ID] = stored
	return nil
}

func (r memIdeaRepo) withOwner(idea models.Idea) models.Idea {
	owner := r.db.users[idea.UserID]
	idea.User = &owner
	return idea
}

func (r memIdeaRepo) GetByID(ctx context.Context, ideaID int) (*models.Idea, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	idea, ok := r.db.ideas[ideaID]
	if !ok {
		return nil, fmt.Errorf("idea %d: %w", ideaID, models.ErrNotFound)
	}
	idea = r.withOwner(idea)
	return &idea, nil
}

func (r memIdeaRepo) List(ctx context.Context, scope models.IdeaScope, skip, limit int) ([]models.Idea, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	ideas := []models.Idea{}
	for _, idea := range r.db.ideas {
		if scope.All || idea.UserID == scope.OwnerID {
			ideas = append(ideas, r.withOwner(idea))
		}
	}
	sort.Slice(ideas, func(i, j int) bool { return ideas[i].ID > ideas[j].ID })
	if skip >= len(ideas) {
		return []models.Idea{}, nil
	}
	ideas = ideas[skip:]
	if limit < len(ideas) {
		ideas = ideas[:limit]
	}
	return ideas, nil
}

func (r memIdeaRepo) Delete(ctx context.Context, ideaID int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.ideas[ideaID]; !ok {
		return fmt.Errorf("idea %d: %w", ideaID, models.ErrNotFound)
	}
	delete(r.db.ideas, ideaID)
	return nil
}

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "admin-password"
)

// testApp is the full router wired the same way cmd/main.go wires it, over memDB
type testApp struct {
	router http.Handler
	db     *memDB
	tokens *service.TokenGenerator
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	db := newMemDB()
	userRepo := memUserRepo{db: db}
	ideaRepo := memIdeaRepo{db: db}
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	tokens := service.NewTokenGenerator("test-secret", 30*time.Minute)

	authService := services.NewAuthService(userRepo, hasher, tokens, logger)
	userService := services.NewUserService(userRepo, hasher, logger)
	ideaService := services.NewIdeaService(ideaRepo, logger)
	require.NoError(t, authService.SeedAdmin(context.Background(), testAdminEmail, testAdminPassword))

	authMiddleware := middleware.AuthMiddleware(tokens, userRepo, logger)

	r := chi.NewRouter()
	NewAuthHandler(authService, logger).RegisterRoutes(r)
	NewUserHandler(userService, logger).RegisterRoutes(r, authMiddleware)
	NewIdeaHandler(ideaService, logger).RegisterRoutes(r, authMiddleware)

	return &testApp{router: r, db: db, tokens: tokens}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates a user and returns a valid access token for them
func (a *testApp) register(t *testing.T, email, password string) (models.User, string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/users/", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user, a.token(t, email, password)
}

func (a *testApp) token(t *testing.T, email, password string) string {
	t.Helper()
	w := a.login(t, email, password)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}
