package repositories

import "context"

// Transaction is an explicit transaction opened on a unit of work.
// Savepoint names are caller-chosen and must be unique within one
// transaction. Rollback after Commit is an error.
type Transaction interface {
	Savepoint(name string) error
	RollbackTo(name string) error
	Commit() error
	Rollback() error
}

// UnitOfWork owns one database session: a repository registry, the staged
// write queue, the transaction lifecycle and the schema-evolution hooks.
// Closing it releases the session; an uncommitted transaction is discarded
// as a rollback.
type UnitOfWork interface {
	BeginTransaction(ctx context.Context) (Transaction, error)

	// SaveChanges flushes every staged add/update/remove across the unit's
	// repositories, in staging order, and returns the affected row count.
	// A rejected write surfaces as ErrPersistenceConflict with the
	// transaction left open.
	SaveChanges(ctx context.Context) (int64, error)

	// PendingMigrations lists migration ids defined but not yet applied.
	PendingMigrations(ctx context.Context) ([]string, error)

	// Migrate applies all pending migrations in definition order.
	Migrate(ctx context.Context) error

	Close() error
}

// DataUnitOfWorkFactory builds a fresh request-scoped unit. Units are
// never shared across concurrent requests.
type DataUnitOfWorkFactory func() DataUnitOfWork

// IdentityUnitOfWorkFactory is the identity-store counterpart.
type IdentityUnitOfWorkFactory func() IdentityUnitOfWork

// DataUnitOfWork scopes the main store. Each accessor returns the same
// repository instance for the unit's lifetime.
type DataUnitOfWork interface {
	UnitOfWork

	TodoLists() TodoListRepository
	Tasks() TaskRepository
	Tags() TagRepository
}

// IdentityUnitOfWork scopes the identity store.
type IdentityUnitOfWork interface {
	UnitOfWork

	Users() UserRepository
	Roles() RoleRepository
	UserRoles() UserRoleRepository
}
