package serviceimpl

import (
	"context"
	"time"

	"todoapp/domain/ports"
	"todoapp/domain/repositories"
	"todoapp/domain/services"
	"todoapp/pkg/logger"
)

type ReminderServiceImpl struct {
	uowFactory repositories.DataUnitOfWorkFactory
	notifier   ports.ReminderNotifier
	now        func() time.Time
}

func NewReminderService(uowFactory repositories.DataUnitOfWorkFactory, notifier ports.ReminderNotifier) services.ReminderService {
	return &ReminderServiceImpl{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *ReminderServiceImpl) ScanOnce(ctx context.Context) error {
	if !s.notifier.IsEnabled() {
		return nil
	}

	uow := s.uowFactory()
	defer uow.Close()

	now := s.now()
	tasks, err := uow.Tasks().GetDueReminders(ctx, now)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	notified := 0
	for i := range tasks {
		task := &tasks[i]

		reminder := &ports.TaskReminder{
			TaskID:     task.ID,
			TodoListID: task.TodoListID,
			Title:      task.Title,
			UserID:     task.UserID,
			DueDate:    task.DueDate,
			RemindedAt: now,
		}
		if err := s.notifier.NotifyTaskReminder(ctx, reminder); err != nil {
			// Keep the reminder set so the next scan retries it.
			logger.ErrorContext(ctx, "Failed to notify task reminder", "task_id", task.ID, "error", err)
			continue
		}

		task.ReminderDate = nil
		if err := uow.Tasks().Update(ctx, task); err != nil {
			return err
		}
		notified++
	}

	if notified == 0 {
		return nil
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Reminder scan completed", "due", len(tasks), "notified", notified)
	return nil
}
