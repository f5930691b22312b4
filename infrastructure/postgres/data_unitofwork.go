package postgres

import (
	"gorm.io/gorm"

	"todoapp/domain/repositories"
)

// DataUnitOfWorkImpl scopes one request or maintenance operation on the
// main store. Repositories are built once and handed out as the same
// instance for the unit's lifetime.
type DataUnitOfWorkImpl struct {
	*unitOfWork

	todoLists repositories.TodoListRepository
	tasks     repositories.TaskRepository
	tags      repositories.TagRepository
}

func NewDataUnitOfWork(db *gorm.DB, source MigrationSource) repositories.DataUnitOfWork {
	u := newUnitOfWork(db, source)
	return &DataUnitOfWorkImpl{
		unitOfWork: u,
		todoLists:  NewTodoListRepository(u),
		tasks:      NewTaskRepository(u),
		tags:       NewTagRepository(u),
	}
}

func (d *DataUnitOfWorkImpl) TodoLists() repositories.TodoListRepository { return d.todoLists }
func (d *DataUnitOfWorkImpl) Tasks() repositories.TaskRepository         { return d.tasks }
func (d *DataUnitOfWorkImpl) Tags() repositories.TagRepository           { return d.tags }

// IdentityUnitOfWorkImpl is the identity-store counterpart.
type IdentityUnitOfWorkImpl struct {
	*unitOfWork

	users     repositories.UserRepository
	roles     repositories.RoleRepository
	userRoles repositories.UserRoleRepository
}

func NewIdentityUnitOfWork(db *gorm.DB, source MigrationSource) repositories.IdentityUnitOfWork {
	u := newUnitOfWork(db, source)
	return &IdentityUnitOfWorkImpl{
		unitOfWork: u,
		users:      NewUserRepository(u),
		roles:      NewRoleRepository(u),
		userRoles:  NewUserRoleRepository(u),
	}
}

func (i *IdentityUnitOfWorkImpl) Users() repositories.UserRepository          { return i.users }
func (i *IdentityUnitOfWorkImpl) Roles() repositories.RoleRepository          { return i.roles }
func (i *IdentityUnitOfWorkImpl) UserRoles() repositories.UserRoleRepository  { return i.userRoles }
