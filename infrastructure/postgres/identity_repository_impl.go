package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

type UserRepositoryImpl struct {
	*GenericRepository[models.User, string]
}

func NewUserRepository(u *unitOfWork) repositories.UserRepository {
	return &UserRepositoryImpl{
		GenericRepository: newGenericRepository[models.User, string](u, "user"),
	}
}

func (r *UserRepositoryImpl) GetWithDetails(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get user with details: empty user id: %w", repositories.ErrInvalidArgument)
	}

	var user models.User
	res := r.u.conn(ctx).Preload("UserRoles").Limit(1).Find(&user, "user_id = ?", userID)
	if res.Error != nil {
		return nil, fmt.Errorf("get user %s with details: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

type RoleRepositoryImpl struct {
	*GenericRepository[models.Role, string]
}

func NewRoleRepository(u *unitOfWork) repositories.RoleRepository {
	return &RoleRepositoryImpl{
		GenericRepository: newGenericRepository[models.Role, string](u, "role"),
	}
}

type UserRoleRepositoryImpl struct {
	u *unitOfWork
}

func NewUserRoleRepository(u *unitOfWork) repositories.UserRoleRepository {
	return &UserRoleRepositoryImpl{u: u}
}

func (r *UserRoleRepositoryImpl) Add(ctx context.Context, userRole *models.UserRole) error {
	if userRole == nil || userRole.UserID == "" || userRole.RoleID == "" {
		return fmt.Errorf("add user role: incomplete association: %w", repositories.ErrInvalidArgument)
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(userRole)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *UserRoleRepositoryImpl) CountForUser(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("count user roles: empty user id: %w", repositories.ErrInvalidArgument)
	}

	var count int64
	err := r.u.conn(ctx).Model(&models.UserRole{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count user roles for %s: %w", userID, err)
	}
	return count, nil
}
