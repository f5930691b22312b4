package postgres

import (
	"context"
	"fmt"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
	"todoapp/pkg/logger"
)

type TodoListRepositoryImpl struct {
	*GenericRepository[models.TodoList, int]
}

func NewTodoListRepository(u *unitOfWork) repositories.TodoListRepository {
	return &TodoListRepositoryImpl{
		GenericRepository: newGenericRepository[models.TodoList, int](u, "todo list"),
	}
}

func (r *TodoListRepositoryImpl) GetWithDetails(ctx context.Context, id int) (*models.TodoList, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get todo list %d with details: %w", id, repositories.ErrInvalidArgument)
	}

	var list models.TodoList
	res := r.u.conn(ctx).Preload("Tasks.TaskTags").Limit(1).Find(&list, "id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("get todo list %d with details: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &list, nil
}

func (r *TodoListRepositoryImpl) GetAllWithDetails(ctx context.Context, userID string) ([]models.TodoList, error) {
	if userID == "" {
		return nil, fmt.Errorf("get todo lists with details: empty user id: %w", repositories.ErrInvalidArgument)
	}

	var lists []models.TodoList
	err := r.u.conn(ctx).Preload("Tasks.TaskTags").Where("user_id = ?", userID).Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("get todo lists with details for user %s: %w", userID, err)
	}
	return lists, nil
}

func (r *TodoListRepositoryImpl) AnyWithTitle(ctx context.Context, title string) (bool, error) {
	if title == "" {
		return false, fmt.Errorf("any todo list with title: empty title: %w", repositories.ErrInvalidArgument)
	}
	return r.ContainsAny(ctx, repositories.Where("title = ?", title))
}

// DuplicateWithDetails loads the full aggregate in one read, rebuilds it
// with zeroed identities and stages the copy. Identities, creation and
// modification dates are regenerated by the store on insert; tag rows point
// at the same tags, bound to the new tasks once those receive ids.
func (r *TodoListRepositoryImpl) DuplicateWithDetails(ctx context.Context, id int) error {
	source, err := r.GetWithDetails(ctx, id)
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("duplicate todo list %d: %w", id, repositories.ErrNotFound)
	}

	duplicate := duplicateList(source)
	logger.InfoContext(ctx, "Todo list duplicate staged",
		"source_id", source.ID,
		"tasks", len(duplicate.Tasks),
	)

	return r.Add(ctx, duplicate)
}

func duplicateList(source *models.TodoList) *models.TodoList {
	tasks := make([]models.Task, 0, len(source.Tasks))
	for i := range source.Tasks {
		tasks = append(tasks, duplicateTask(&source.Tasks[i]))
	}

	return &models.TodoList{
		Title:  source.Title,
		UserID: source.UserID,
		Tasks:  tasks,
	}
}

func duplicateTask(source *models.Task) models.Task {
	// TaskID stays zero here; it is bound when the new task gets its
	// identity on insert.
	tags := make([]models.TaskTag, 0, len(source.TaskTags))
	for _, tt := range source.TaskTags {
		tags = append(tags, models.TaskTag{TagID: tt.TagID})
	}

	return models.Task{
		Title:        source.Title,
		Description:  source.Description,
		DueDate:      source.DueDate,
		ReminderDate: source.ReminderDate,
		Status:       source.Status,
		UserID:       source.UserID,
		TaskTags:     tags,
	}
}
