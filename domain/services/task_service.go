package services

import (
	"context"

	"todoapp/domain/dto"
	"todoapp/domain/models"
)

type TaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) error
	Delete(ctx context.Context, id int) error

	// SetTags replaces the task's tag set with the given titles, creating
	// unknown tags on first use. Tags are shared entities.
	SetTags(ctx context.Context, taskID int, titles []string) error
}

type ReminderService interface {
	// ScanOnce finds open tasks whose reminder has come due, notifies for
	// each and clears the reminder so it fires once.
	ScanOnce(ctx context.Context) error
}
