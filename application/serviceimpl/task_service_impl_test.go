package serviceimpl

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/domain/dto"
	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

func newTaskFixture(t *testing.T) (repositories.DataUnitOfWorkFactory, *models.TodoList) {
	t.Helper()
	ctx := context.Background()

	factory := newTestFactory(t)
	list, err := NewTodoListService(factory).Create(ctx, &dto.CreateTodoListRequest{
		Title:  "Fixture",
		UserID: "user-1",
	})
	require.NoError(t, err)
	return factory, list
}

func TestTaskServiceCreate(t *testing.T) {
	ctx := context.Background()
	factory, list := newTaskFixture(t)
	svc := NewTaskService(factory)

	task, err := svc.Create(ctx, &dto.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "Two liters",
		DueDate:     time.Now().Add(24 * time.Hour),
		TodoListID:  list.ID,
		UserID:      "user-1",
	})
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, models.TaskStatusNotStarted, task.Status)

	got, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
}

func TestTaskServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	factory, list := newTaskFixture(t)
	svc := NewTaskService(factory)

	_, err := svc.Create(ctx, &dto.CreateTaskRequest{
		Description: "missing title",
		TodoListID:  list.ID,
		UserID:      "user-1",
	})
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)

	_, err = svc.Create(ctx, &dto.CreateTaskRequest{
		Title:      "missing description",
		TodoListID: list.ID,
		UserID:     "user-1",
	})
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)

	// Parent list must exist.
	_, err = svc.Create(ctx, &dto.CreateTaskRequest{
		Title:       "orphan",
		Description: "no such list",
		TodoListID:  9999,
		UserID:      "user-1",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskServiceUpdate(t *testing.T) {
	ctx := context.Background()
	factory, list := newTaskFixture(t)
	svc := NewTaskService(factory)

	task, err := svc.Create(ctx, &dto.CreateTaskRequest{
		Title:       "Initial",
		Description: "desc",
		DueDate:     time.Now(),
		TodoListID:  list.ID,
		UserID:      "user-1",
	})
	require.NoError(t, err)

	due := time.Now().Add(48 * time.Hour)
	require.NoError(t, svc.Update(ctx, task.ID, &dto.UpdateTaskRequest{
		Title:       "Renamed",
		Description: "new desc",
		DueDate:     due,
		Status:      string(models.TaskStatusInProgress),
	}))

	got, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, models.TaskStatusInProgress, got.Status)

	err = svc.Update(ctx, task.ID, &dto.UpdateTaskRequest{
		Title:       "Bad status",
		Description: "desc",
		Status:      "Done",
	})
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)

	err = svc.Update(ctx, 9999, &dto.UpdateTaskRequest{
		Title:       "Ghost",
		Description: "desc",
		Status:      string(models.TaskStatusNotStarted),
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestTaskServiceDelete(t *testing.T) {
	ctx := context.Background()
	factory, list := newTaskFixture(t)
	svc := NewTaskService(factory)

	task, err := svc.Create(ctx, &dto.CreateTaskRequest{
		Title:       "Short lived",
		Description: "desc",
		TodoListID:  list.ID,
		UserID:      "user-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))

	_, err = svc.Get(ctx, task.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), repositories.ErrNotFound)
}

func TestTaskServiceSetTags(t *testing.T) {
	ctx := context.Background()
	factory, list := newTaskFixture(t)
	svc := NewTaskService(factory)

	task, err := svc.Create(ctx, &dto.CreateTaskRequest{
		Title:       "Tagged",
		Description: "desc",
		TodoListID:  list.ID,
		UserID:      "user-1",
	})
	require.NoError(t, err)

	// First assignment creates both tags.
	require.NoError(t, svc.SetTags(ctx, task.ID, []string{"errand", "urgent"}))

	got, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, got.TagIDs(), 2)

	// Replacement reuses the existing tag and drops the other association.
	require.NoError(t, svc.SetTags(ctx, task.ID, []string{"errand"}))

	got, err = svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, got.TagIDs(), 1)

	uow := factory()
	defer uow.Close()
	tags, err := uow.Tags().GetAll(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(tags))
	for _, tag := range tags {
		titles = append(titles, tag.Title)
	}
	sort.Strings(titles)
	assert.Equal(t, []string{"errand", "urgent"}, titles, "tags are shared and never deleted by reassignment")

	// Duplicate titles collapse to one association.
	require.NoError(t, svc.SetTags(ctx, task.ID, []string{"errand", "errand"}))
	got, err = svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, got.TagIDs(), 1)

	// Clearing leaves the task untagged.
	require.NoError(t, svc.SetTags(ctx, task.ID, nil))
	got, err = svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TagIDs())

	assert.ErrorIs(t, svc.SetTags(ctx, task.ID, []string{""}), repositories.ErrInvalidArgument)
	assert.ErrorIs(t, svc.SetTags(ctx, 9999, []string{"errand"}), repositories.ErrNotFound)
}
