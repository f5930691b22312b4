package messaging

import (
	"context"

	"todoapp/domain/ports"
	"todoapp/pkg/logger"
)

// LogNotifier is the fallback when no message bus is configured: reminders
// only show up in the log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyTaskReminder(ctx context.Context, reminder *ports.TaskReminder) error {
	logger.InfoContext(ctx, "Task reminder due",
		"task_id", reminder.TaskID,
		"todo_list_id", reminder.TodoListID,
		"title", reminder.Title,
		"user_id", reminder.UserID,
		"due_date", reminder.DueDate,
	)
	return nil
}

func (n *LogNotifier) IsEnabled() bool {
	return true
}
