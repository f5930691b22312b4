package repositories

import (
	"context"
	"time"

	"todoapp/domain/models"
)

type TaskRepository interface {
	Repository[models.Task, int]

	// GetWithTags loads the task together with its tag associations.
	GetWithTags(ctx context.Context, id int) (*models.Task, error)

	// GetDueReminders returns open tasks whose reminder has come due at or
	// before the given instant.
	GetDueReminders(ctx context.Context, by time.Time) ([]models.Task, error)

	// ReplaceTags stages a full replacement of the task's tag associations.
	ReplaceTags(ctx context.Context, taskID int, tagIDs []int) error
}
