package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// createdAtLayout is the ISO-8601 layout ideas are stamped with
const createdAtLayout = "2006-01-02T15:04:05.000000"

// IdeaRepository is the interface that wraps methods for Ideas table data access
type IdeaRepository interface {
	// Method Create inserts a new idea into the database.
	//
	// On success idea.ID is set to the generated id.
	// If the owner does not exist, an error wrapping models.ErrNotFound is returned.
	Create(ctx context.Context, idea *models.Idea) error
	// Method GetByID retrieves an idea together with its owner.
	//
	// If idea with such ID does not exist, an error wrapping models.ErrNotFound is returned.
	GetByID(ctx context.Context, ideaID int) (*models.Idea, error)
	// Method List retrieves ideas visible in scope, newest first, each with its owner.
	//
	// "skip" and "limit" page through the result set.
	List(ctx context.Context, scope models.IdeaScope, skip, limit int) ([]models.Idea, error)
	// Method Delete removes an idea by ID.
	//
	// If idea with such ID does not exist, an error wrapping models.ErrNotFound is returned.
	Delete(ctx context.Context, ideaID int) error
}

type ideaService struct {
	repo   IdeaRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewIdeaService creates a new idea service
func NewIdeaService(repo IdeaRepository, logger *zap.Logger) *ideaService {
	return &ideaService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateIdea stores a new idea owned by caller
func (s *ideaService) CreateIdea(ctx context.Context, caller *models.User, req *models.CreateIdeaRequest) (*models.Idea, error) {
	if caller == nil {
		return nil, models.ErrUnauthenticated
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		Content:   req.Idea,
		UserID:    caller.ID,
		CreatedAt: s.now().UTC().Format(createdAtLayout),
	}
	if err := s.repo.Create(ctx, idea); err != nil {
		s.logger.Error("failed to create idea", zap.Int("userId", caller.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	owner := *caller
	idea.User = &owner
	return idea, nil
}

// ListIdeas lists the ideas caller may see, newest first.
//
// Admins see every idea, other users only their own.
// "skip" must be >= 0, "limit" must be in [0, models.MaxIdeaLimit].
func (s *ideaService) ListIdeas(ctx context.Context, caller *models.User, skip, limit int) ([]models.Idea, error) {
	if caller == nil {
		return nil, models.ErrUnauthenticated
	}
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", models.ErrValidation)
	}
	if limit < 0 || limit > models.MaxIdeaLimit {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", models.ErrValidation, models.MaxIdeaLimit)
	}

	ideas, err := s.repo.List(ctx, service.IdeaScopeFor(caller), skip, limit)
	if err != nil {
		s.logger.Error("failed to list ideas", zap.Int("userId", caller.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// DeleteIdea deletes an idea if caller owns it or is an admin
func (s *ideaService) DeleteIdea(ctx context.Context, caller *models.User, ideaID int) error {
	if caller == nil {
		return models.ErrUnauthenticated
	}

	idea, err := s.repo.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("idea not found: %w", err)
		}
		s.logger.Error("failed to get idea", zap.Int("ideaId", ideaID), zap.Error(err))
		return fmt.Errorf("failed to get idea: %w", err)
	}

	if err := service.CanDeleteIdea(caller, idea); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, ideaID); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Error("failed to delete idea", zap.Int("ideaId", ideaID), zap.Error(err))
		}
		return err
	}
	return nil
}
