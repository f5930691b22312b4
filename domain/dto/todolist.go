package dto

import (
	"time"

	"todoapp/domain/models"
)

type CreateTodoListRequest struct {
	Title  string `json:"title" validate:"required,min=3,max=70"`
	UserID string `json:"userId" validate:"required"`
}

type UpdateTodoListRequest struct {
	Title string `json:"title" validate:"required,min=3,max=70"`
}

type TodoListResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	UserID    string `json:"userId"`
	TaskCount int    `json:"taskCount"`
}

// TodoListDetails is the detail view of one list: tasks partitioned into
// disjoint buckets, each sorted by due date.
type TodoListDetails struct {
	ID                int            `json:"id"`
	Title             string         `json:"title"`
	UserID            string         `json:"userId"`
	TasksForToday     []TaskResponse `json:"tasksForToday"`
	TasksCompleted    []TaskResponse `json:"tasksCompleted"`
	TasksNotCompleted []TaskResponse `json:"tasksNotCompleted"`
	TasksExpired      []TaskResponse `json:"tasksExpired"`
}

func ToTodoListResponse(list *models.TodoList) TodoListResponse {
	return TodoListResponse{
		ID:        list.ID,
		Title:     list.Title,
		UserID:    list.UserID,
		TaskCount: len(list.Tasks),
	}
}

type TaskResponse struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	DueDate      time.Time         `json:"dueDate"`
	ReminderDate *time.Time        `json:"reminderDate,omitempty"`
	Status       models.TaskStatus `json:"status"`
	TodoListID   int               `json:"todoListId"`
	UserID       string            `json:"userId"`
	TagIDs       []int             `json:"tagIds,omitempty"`
}

func ToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		DueDate:      task.DueDate,
		ReminderDate: task.ReminderDate,
		Status:       task.Status,
		TodoListID:   task.TodoListID,
		UserID:       task.UserID,
		TagIDs:       task.TagIDs(),
	}
}
