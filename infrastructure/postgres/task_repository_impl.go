package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

type TaskRepositoryImpl struct {
	*GenericRepository[models.Task, int]
}

func NewTaskRepository(u *unitOfWork) repositories.TaskRepository {
	return &TaskRepositoryImpl{
		GenericRepository: newGenericRepository[models.Task, int](u, "task"),
	}
}

func (r *TaskRepositoryImpl) GetWithTags(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get task %d with tags: %w", id, repositories.ErrInvalidArgument)
	}

	var task models.Task
	res := r.u.conn(ctx).Preload("TaskTags").Limit(1).Find(&task, "id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("get task %d with tags: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ReplaceTags(ctx context.Context, taskID int, tagIDs []int) error {
	if taskID <= 0 {
		return fmt.Errorf("replace tags for task %d: %w", taskID, repositories.ErrInvalidArgument)
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Where("task_id = ?", taskID).Delete(&models.TaskTag{})
		if res.Error != nil {
			return 0, res.Error
		}
		affected := res.RowsAffected

		if len(tagIDs) == 0 {
			return affected, nil
		}

		rows := make([]models.TaskTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, models.TaskTag{TaskID: taskID, TagID: tagID})
		}
		res = tx.Create(&rows)
		return affected + res.RowsAffected, res.Error
	})
	return nil
}

func (r *TaskRepositoryImpl) GetDueReminders(ctx context.Context, by time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.u.conn(ctx).
		Where("reminder_date IS NOT NULL AND reminder_date <= ? AND status <> ?", by, models.TaskStatusCompleted).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("get due reminders: %w", err)
	}
	return tasks, nil
}
