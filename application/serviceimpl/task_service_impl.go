package serviceimpl

import (
	"context"
	"fmt"

	"todoapp/domain/dto"
	"todoapp/domain/models"
	"todoapp/domain/repositories"
	"todoapp/domain/services"
	"todoapp/pkg/logger"
)

type TaskServiceImpl struct {
	uowFactory repositories.DataUnitOfWorkFactory
}

func NewTaskService(uowFactory repositories.DataUnitOfWorkFactory) services.TaskService {
	return &TaskServiceImpl{uowFactory: uowFactory}
}

func (s *TaskServiceImpl) Create(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory()
	defer uow.Close()

	list, err := uow.TodoLists().Get(ctx, req.TodoListID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("create task: todo list %d: %w", req.TodoListID, repositories.ErrNotFound)
	}

	task := &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ReminderDate: req.ReminderDate,
		Status:       models.TaskStatusNotStarted,
		TodoListID:   req.TodoListID,
		UserID:       req.UserID,
	}

	if err := uow.Tasks().Add(ctx, task); err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "todo_list_id", req.TodoListID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "todo_list_id", task.TodoListID)
	return task, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get task %d: %w", id, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	task, err := uow.Tasks().GetWithTags(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %d: %w", id, repositories.ErrNotFound)
	}
	return task, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) error {
	if id <= 0 {
		return fmt.Errorf("update task %d: %w", id, repositories.ErrInvalidArgument)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	status := models.TaskStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("update task %d: status %q: %w", id, req.Status, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	task, err := uow.Tasks().Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("update task %d: %w", id, repositories.ErrNotFound)
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.ReminderDate = req.ReminderDate
	task.Status = status

	if err := uow.Tasks().Update(ctx, task); err != nil {
		return err
	}
	_, err = uow.SaveChanges(ctx)
	return err
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("delete task %d: %w", id, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	task, err := uow.Tasks().Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("delete task %d: %w", id, repositories.ErrNotFound)
	}

	if err := uow.Tasks().Remove(ctx, task); err != nil {
		return err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) SetTags(ctx context.Context, taskID int, titles []string) error {
	if taskID <= 0 {
		return fmt.Errorf("set tags for task %d: %w", taskID, repositories.ErrInvalidArgument)
	}
	for _, title := range titles {
		if title == "" || len(title) > models.TagTitleMaxLength {
			return fmt.Errorf("set tags for task %d: invalid tag title %q: %w", taskID, title, repositories.ErrInvalidArgument)
		}
	}

	uow := s.uowFactory()
	defer uow.Close()

	task, err := uow.Tasks().GetWithTags(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("set tags for task %d: %w", taskID, repositories.ErrNotFound)
	}

	tagIDs, err := s.resolveTagIDs(ctx, uow, titles)
	if err != nil {
		return err
	}

	if err := uow.Tasks().ReplaceTags(ctx, taskID, tagIDs); err != nil {
		return err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task tags replaced", "task_id", taskID, "tag_count", len(tagIDs))
	return nil
}

// resolveTagIDs maps titles to tag IDs, creating tags that do not exist yet.
// New tags are flushed before their IDs can be read back.
func (s *TaskServiceImpl) resolveTagIDs(ctx context.Context, uow repositories.DataUnitOfWork, titles []string) ([]int, error) {
	tagIDs := make([]int, 0, len(titles))
	seen := make(map[string]bool, len(titles))
	var created []*models.Tag

	for _, title := range titles {
		if seen[title] {
			continue
		}
		seen[title] = true

		tag, err := uow.Tags().GetByTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &models.Tag{Title: title}
			if err := uow.Tags().Add(ctx, tag); err != nil {
				return nil, err
			}
			created = append(created, tag)
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if len(created) > 0 {
		if _, err := uow.SaveChanges(ctx); err != nil {
			return nil, err
		}
		for _, tag := range created {
			tagIDs = append(tagIDs, tag.ID)
		}
	}

	return tagIDs, nil
}
