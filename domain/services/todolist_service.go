package services

import (
	"context"
	"time"

	"todoapp/domain/dto"
	"todoapp/domain/models"
)

type TodoListService interface {
	Create(ctx context.Context, req *dto.CreateTodoListRequest) (*models.TodoList, error)
	GetAll(ctx context.Context, userID string) ([]dto.TodoListResponse, error)

	// GetDetails loads one list and partitions its tasks into the detail
	// view buckets. filterDueDate optionally caps the not-completed bucket.
	GetDetails(ctx context.Context, id int, filterDueDate *time.Time) (*dto.TodoListDetails, error)

	Update(ctx context.Context, id int, req *dto.UpdateTodoListRequest) error
	Delete(ctx context.Context, id int) error

	// Duplicate deep-copies the list aggregate under fresh identities.
	Duplicate(ctx context.Context, id int) error
}
