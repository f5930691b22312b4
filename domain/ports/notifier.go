package ports

import (
	"context"
	"time"
)

// TaskReminder is the payload sent when a task's reminder comes due.
type TaskReminder struct {
	TaskID     int       `json:"taskId"`
	TodoListID int       `json:"todoListId"`
	Title      string    `json:"title"`
	UserID     string    `json:"userId"`
	DueDate    time.Time `json:"dueDate"`
	RemindedAt time.Time `json:"remindedAt"`
}

// ReminderNotifier delivers reminder notifications to whatever channel is
// configured (message bus, log).
type ReminderNotifier interface {
	NotifyTaskReminder(ctx context.Context, reminder *TaskReminder) error
	IsEnabled() bool
}
