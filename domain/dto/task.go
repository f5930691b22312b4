package dto

import "time"

type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,max=70"`
	Description  string     `json:"description" validate:"required,max=300"`
	DueDate      time.Time  `json:"dueDate"`
	ReminderDate *time.Time `json:"reminderDate" validate:"omitempty"`
	TodoListID   int        `json:"todoListId" validate:"required,gt=0"`
	UserID       string     `json:"userId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title        string     `json:"title" validate:"required,max=70"`
	Description  string     `json:"description" validate:"required,max=300"`
	DueDate      time.Time  `json:"dueDate"`
	ReminderDate *time.Time `json:"reminderDate" validate:"omitempty"`
	Status       string     `json:"status" validate:"required,oneof=NotStarted InProgress Completed"`
}
