package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// UserRepository is the interface that wraps methods for Users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// On success user.ID is set to the generated id.
	// A duplicate email returns an error wrapping models.ErrConflict.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by exact (case-sensitive) email.
	//
	// If user with such email does not exist, an error wrapping models.ErrNotFound is returned.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, an error wrapping models.ErrNotFound is returned.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method List retrieves all users ordered by ID.
	List(ctx context.Context) ([]models.User, error)
	// Method Delete removes a non-admin user by ID, together with their ideas.
	//
	// If no non-admin user with such ID exists, an error wrapping models.ErrNotFound is returned.
	Delete(ctx context.Context, userID int) error
}

type userService struct {
	repo   UserRepository
	hasher *service.PasswordHasher
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, hasher *service.PasswordHasher, logger *zap.Logger) *userService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new regular (non-admin) user account.
//
// Email is stored exactly as given. When name is empty the local part of the email is used.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", models.ErrValidation, maxPasswordBytes)
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to check email", zap.Error(err))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", models.ErrConflict)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(req.Email, "@", 2)[0]
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, models.ErrConflict) {
			s.logger.Error("failed to create user", zap.Error(err))
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetUsersList retrieves all users
func (s *userService) GetUsersList(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser deletes the user with userID on behalf of caller.
//
// Checks run in order: caller must be admin (403), target must exist (404),
// target must not be admin (403).
func (s *userService) DeleteUser(ctx context.Context, caller *models.User, userID int) error {
	if caller == nil {
		return models.ErrUnauthenticated
	}
	if err := service.CanDeleteUser(caller, nil); err != nil {
		return err
	}

	target, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("user not found: %w", err)
		}
		s.logger.Error("failed to get user", zap.Int("userId", userID), zap.Error(err))
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := service.CanDeleteUser(caller, target); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("failed to delete user", zap.Int("userId", userID), zap.Error(err))
		}
		return err
	}

	s.logger.Info("user deleted", zap.Int("userId", userID), zap.Int("deletedBy", caller.ID))
	return nil
}
