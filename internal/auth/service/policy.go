package service

import (
	"fmt"

	"github.com/ideaboard/backend/internal/models"
)

// CanDeleteUser checks that caller may delete target.
// Only admins delete users, and admin accounts are never deletable.
func CanDeleteUser(caller, target *models.User) error {
	if caller == nil || !caller.IsAdmin {
		return fmt.Errorf("%w: operation not permitted", models.ErrForbidden)
	}
	if target != nil && target.IsAdmin {
		return fmt.Errorf("%w: admins cannot be deleted", models.ErrForbidden)
	}
	return nil
}

// CanDeleteIdea checks that caller owns idea or is an admin
func CanDeleteIdea(caller *models.User, idea *models.Idea) error {
	if caller == nil {
		return models.ErrUnauthenticated
	}
	if caller.IsAdmin || idea.UserID == caller.ID {
		return nil
	}
	return fmt.Errorf("%w: not authorized to delete this idea", models.ErrForbidden)
}

// IdeaScopeFor returns the set of ideas visible to caller:
// every idea for admins, only their own for everyone else.
func IdeaScopeFor(caller *models.User) models.IdeaScope {
	if caller.IsAdmin {
		return models.IdeaScope{All: true}
	}
	return models.IdeaScope{OwnerID: caller.ID}
}
