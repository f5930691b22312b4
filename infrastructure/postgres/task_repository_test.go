package postgres

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

func TestGetWithTags(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)
	list, tags := seedListWithTags(t, uow)

	full, err := uow.TodoLists().GetWithDetails(ctx, list.ID)
	require.NoError(t, err)

	var milkID int
	for _, task := range full.Tasks {
		if task.Title == "Buy milk" {
			milkID = task.ID
		}
	}
	require.NotZero(t, milkID)

	task, err := uow.Tasks().GetWithTags(ctx, milkID)
	require.NoError(t, err)
	require.NotNil(t, task)

	got := task.TagIDs()
	sort.Ints(got)
	want := []int{tags[0].ID, tags[1].ID}
	sort.Ints(want)
	assert.Equal(t, want, got)

	_, err = uow.Tasks().GetWithTags(ctx, 0)
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)
}

func TestReplaceTags(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)
	list, tags := seedListWithTags(t, uow)

	full, err := uow.TodoLists().GetWithDetails(ctx, list.ID)
	require.NoError(t, err)
	taskID := full.Tasks[0].ID

	// Swap the whole set for just the second tag.
	require.NoError(t, uow.Tasks().ReplaceTags(ctx, taskID, []int{tags[1].ID}))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	task, err := uow.Tasks().GetWithTags(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, []int{tags[1].ID}, task.TagIDs())

	// Empty set clears all associations.
	require.NoError(t, uow.Tasks().ReplaceTags(ctx, taskID, nil))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	task, err = uow.Tasks().GetWithTags(ctx, taskID)
	require.NoError(t, err)
	assert.Empty(t, task.TagIDs())

	err = uow.Tasks().ReplaceTags(ctx, -1, nil)
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)
}

func TestGetDueReminders(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	list := &models.TodoList{Title: "Reminders", UserID: "user-1"}
	require.NoError(t, uow.TodoLists().Add(ctx, list))
	_, err := uow.SaveChanges(ctx)
	require.NoError(t, err)

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tasks := []*models.Task{
		{Title: "due", Description: "d", DueDate: now, ReminderDate: &past, TodoListID: list.ID, UserID: "user-1", Status: models.TaskStatusNotStarted},
		{Title: "not yet", Description: "d", DueDate: now, ReminderDate: &future, TodoListID: list.ID, UserID: "user-1", Status: models.TaskStatusNotStarted},
		{Title: "no reminder", Description: "d", DueDate: now, TodoListID: list.ID, UserID: "user-1", Status: models.TaskStatusNotStarted},
		{Title: "already done", Description: "d", DueDate: now, ReminderDate: &past, TodoListID: list.ID, UserID: "user-1", Status: models.TaskStatusCompleted},
	}
	require.NoError(t, uow.Tasks().AddRange(ctx, tasks))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	due, err := uow.Tasks().GetDueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].Title)
}
