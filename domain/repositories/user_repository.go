package repositories

import (
	"context"

	"todoapp/domain/models"
)

type UserRepository interface {
	Repository[models.User, string]

	// GetWithDetails loads the user together with its role associations.
	GetWithDetails(ctx context.Context, userID string) (*models.User, error)
}

type RoleRepository interface {
	Repository[models.Role, string]
}

// UserRoleRepository manages the user<->role join rows. The row has no
// identity beyond its (UserID, RoleID) pair, so the generic contract does
// not apply.
type UserRoleRepository interface {
	Add(ctx context.Context, userRole *models.UserRole) error
	CountForUser(ctx context.Context, userID string) (int64, error)
}
