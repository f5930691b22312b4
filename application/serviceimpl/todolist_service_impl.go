package serviceimpl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"todoapp/domain/dto"
	"todoapp/domain/models"
	"todoapp/domain/repositories"
	"todoapp/domain/services"
	"todoapp/pkg/logger"
)

type TodoListServiceImpl struct {
	uowFactory repositories.DataUnitOfWorkFactory
}

func NewTodoListService(uowFactory repositories.DataUnitOfWorkFactory) services.TodoListService {
	return &TodoListServiceImpl{uowFactory: uowFactory}
}

func (s *TodoListServiceImpl) Create(ctx context.Context, req *dto.CreateTodoListRequest) (*models.TodoList, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory()
	defer uow.Close()

	// Duplicate titles are allowed; the probe only feeds a warning.
	exists, err := uow.TodoLists().AnyWithTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.WarnContext(ctx, "Todo list with same title already exists", "title", req.Title)
	}

	list := &models.TodoList{
		Title:  req.Title,
		UserID: req.UserID,
	}

	if err := uow.TodoLists().Add(ctx, list); err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to create todo list", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Todo list created", "todo_list_id", list.ID, "user_id", list.UserID)
	return list, nil
}

func (s *TodoListServiceImpl) GetAll(ctx context.Context, userID string) ([]dto.TodoListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("get all todo lists: empty user id: %w", repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	lists, err := uow.TodoLists().GetAllWithDetails(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TodoListResponse, 0, len(lists))
	for i := range lists {
		responses = append(responses, dto.ToTodoListResponse(&lists[i]))
	}
	return responses, nil
}

func (s *TodoListServiceImpl) GetDetails(ctx context.Context, id int, filterDueDate *time.Time) (*dto.TodoListDetails, error) {
	if id <= 0 {
		return nil, fmt.Errorf("todo list details %d: %w", id, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	list, err := uow.TodoLists().GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("todo list %d: %w", id, repositories.ErrNotFound)
	}

	details := partitionTasks(list, filterDueDate, time.Now())

	// The three visible buckets sort concurrently; each holds a disjoint
	// slice, so there is no shared state across the goroutines. The group
	// joins before the view is returned.
	g, _ := errgroup.WithContext(ctx)
	for _, bucket := range [][]dto.TaskResponse{
		details.TasksNotCompleted,
		details.TasksForToday,
		details.TasksCompleted,
	} {
		bucket := bucket
		g.Go(func() error {
			sortTasksByDueDate(bucket)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *TodoListServiceImpl) Update(ctx context.Context, id int, req *dto.UpdateTodoListRequest) error {
	if id <= 0 {
		return fmt.Errorf("update todo list %d: %w", id, repositories.ErrInvalidArgument)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	uow := s.uowFactory()
	defer uow.Close()

	list, err := uow.TodoLists().Get(ctx, id)
	if err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("update todo list %d: %w", id, repositories.ErrNotFound)
	}

	list.Title = req.Title
	if err := uow.TodoLists().Update(ctx, list); err != nil {
		return err
	}
	_, err = uow.SaveChanges(ctx)
	return err
}

func (s *TodoListServiceImpl) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("delete todo list %d: %w", id, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	list, err := uow.TodoLists().Get(ctx, id)
	if err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("delete todo list %d: %w", id, repositories.ErrNotFound)
	}

	if err := uow.TodoLists().Remove(ctx, list); err != nil {
		return err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Todo list deleted", "todo_list_id", id)
	return nil
}

func (s *TodoListServiceImpl) Duplicate(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("duplicate todo list %d: %w", id, repositories.ErrInvalidArgument)
	}

	uow := s.uowFactory()
	defer uow.Close()

	if err := uow.TodoLists().DuplicateWithDetails(ctx, id); err != nil {
		return err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to persist duplicated todo list", "todo_list_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Todo list duplicated", "source_id", id)
	return nil
}

// partitionTasks splits the list's tasks into disjoint view buckets:
// completed, expired (overdue and still open), due today, and the open
// remainder, optionally capped by filterDueDate.
func partitionTasks(list *models.TodoList, filterDueDate *time.Time, now time.Time) *dto.TodoListDetails {
	details := &dto.TodoListDetails{
		ID:     list.ID,
		Title:  list.Title,
		UserID: list.UserID,
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := range list.Tasks {
		task := &list.Tasks[i]
		resp := dto.ToTaskResponse(task)

		switch {
		case task.Status == models.TaskStatusCompleted:
			details.TasksCompleted = append(details.TasksCompleted, resp)
		case task.DueDate.Before(startOfToday):
			details.TasksExpired = append(details.TasksExpired, resp)
		case task.IsDueOn(now):
			details.TasksForToday = append(details.TasksForToday, resp)
		default:
			if filterDueDate == nil || task.DueDate.Before(*filterDueDate) {
				details.TasksNotCompleted = append(details.TasksNotCompleted, resp)
			}
		}
	}

	return details
}

func sortTasksByDueDate(tasks []dto.TaskResponse) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
}
