package repositories

import (
	"context"

	"todoapp/domain/models"
)

type TodoListRepository interface {
	Repository[models.TodoList, int]

	// GetWithDetails loads the list together with its tasks and their tag
	// associations in one read.
	GetWithDetails(ctx context.Context, id int) (*models.TodoList, error)

	// GetAllWithDetails loads every list owned by the user, tasks included.
	GetAllWithDetails(ctx context.Context, userID string) ([]models.TodoList, error)

	// AnyWithTitle reports whether any list with the given title exists.
	// Duplicate-detection heuristic, not a uniqueness guarantee.
	AnyWithTitle(ctx context.Context, title string) (bool, error)

	// DuplicateWithDetails deep-copies the list aggregate (tasks and their
	// tag associations) with fresh identities and stages the copy for
	// insertion. Tags themselves are shared, not duplicated. The caller
	// flushes with SaveChanges. Fails with ErrNotFound when the list is
	// absent.
	DuplicateWithDetails(ctx context.Context, id int) error
}
