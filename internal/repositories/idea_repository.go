package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ideaboard/backend/internal/models"
	"go.uber.org/zap"
)

// ideaColumns selects an idea joined with its owner
const ideaColumns = `
	i.id, i.idea, i.created_at, i.user_id,
	u.id, u.email, u.name, u.is_admin
`

type ideaRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *sql.DB, logger *zap.Logger) *ideaRepository {
	return &ideaRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new idea into the database.
// An owner that does not exist is reported as models.ErrNotFound.
func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	query := `
		INSERT INTO ideas (idea, created_at, user_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, idea.Content, idea.CreatedAt, idea.UserID)
	if err != nil {
		if isMySQLError(err, mysqlErrNoReferencedRow) {
			return fmt.Errorf("owner %d: %w", idea.UserID, models.ErrNotFound)
		}
		r.logger.Error("failed to create idea", zap.Error(err))
		return fmt.Errorf("failed to create idea: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	idea.ID = int(id)
	return nil
}

// GetByID retrieves an idea together with its owner
func (r *ideaRepository) GetByID(ctx context.Context, ideaID int) (*models.Idea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM ideas i
		JOIN users u ON u.id = i.user_id
		WHERE i.id = ?
		LIMIT 1
	`

	idea, err := scanIdea(r.db.QueryRowContext(ctx, query, ideaID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("idea %d: %w", ideaID, models.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get idea by id", zap.Error(err), zap.Int("ideaId", ideaID))
		return nil, fmt.Errorf("failed to get idea by id: %w", err)
	}

	return idea, nil
}

// List returns ideas within scope, newest first, each with its owner
func (r *ideaRepository) List(ctx context.Context, scope models.IdeaScope, skip, limit int) ([]models.Idea, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM ideas i
		JOIN users u ON u.id = i.user_id
	`
	args := []any{}
	if !scope.All {
		query += ` WHERE i.user_id = ?`
		args = append(args, scope.OwnerID)
	}
	query += ` ORDER BY i.id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query ideas", zap.Error(err))
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			r.logger.Error("failed to scan idea", zap.Error(err))
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, *idea)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ideas, nil
}

// Delete removes an idea by ID
func (r *ideaRepository) Delete(ctx context.Context, ideaID int) error {
	query := `DELETE FROM ideas WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, ideaID)
	if err != nil {
		r.logger.Error("failed to delete idea", zap.Error(err), zap.Int("ideaId", ideaID))
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("idea %d: %w", ideaID, models.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*models.Idea, error) {
	idea := &models.Idea{User: &models.User{}}
	err := row.Scan(
		&idea.ID,
		&idea.Content,
		&idea.CreatedAt,
		&idea.UserID,
		&idea.User.ID,
		&idea.User.Email,
		&idea.User.Name,
		&idea.User.IsAdmin,
	)
	if err != nil {
		return nil, err
	}
	return idea, nil
}
