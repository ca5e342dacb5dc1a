package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

const (
	tokenTypeBearer = "bearer"
	adminName       = "Admin"
)

// authService implements login and the admin account bootstrap
type authService struct {
	userRepo       UserRepository
	hasher         *service.PasswordHasher
	tokenGenerator *service.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	hasher *service.PasswordHasher,
	tokenGenerator *service.TokenGenerator,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:       userRepo,
		hasher:         hasher,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login exchanges an email and password for an access token.
//
// Unknown email and wrong password are reported identically.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: incorrect email or password", models.ErrUnauthenticated)
		}
		s.logger.Error("failed to get user for login", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: incorrect email or password", models.ErrUnauthenticated)
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}

// SeedAdmin makes sure an admin account with email exists.
//
// Nothing happens when email or password is empty or the email is already registered.
// Losing an insert race to another instance is not an error.
func (s *authService) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.Info("admin credentials not configured, skipping admin seeding")
		return nil
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		s.logger.Info("admin user already exists", zap.String("email", email))
		return nil
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        email,
		Name:         adminName,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, models.ErrConflict) {
			s.logger.Info("admin user created concurrently", zap.String("email", email))
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.Info("admin user created", zap.String("email", email), zap.Int("userId", admin.ID))
	return nil
}
