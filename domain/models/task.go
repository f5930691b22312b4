package models

import (
	"time"
)

const (
	TaskTitleMaxLength       = 70
	TaskDescriptionMaxLength = 300
)

// TaskStatus is persisted as its name, not an ordinal, so reordering the
// constants never corrupts stored rows.
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "NotStarted"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID                   int    `gorm:"primaryKey"`
	Title                string `gorm:"size:70;not null"`
	Description          string `gorm:"size:300;not null"`
	DueDate              time.Time
	CreationDate         time.Time  `gorm:"autoCreateTime"`
	LastModificationDate time.Time  `gorm:"autoUpdateTime"`
	ReminderDate         *time.Time `gorm:"index"`
	Status               TaskStatus `gorm:"type:varchar(20);not null;default:'NotStarted'"`
	TodoListID           int        `gorm:"not null;index"`
	UserID               string     `gorm:"size:450;not null;index"`
	TaskTags             []TaskTag  `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`

	// Concurrency stamp. Persisted but not checked on update (last write wins).
	DataVersion string `gorm:"size:36"`
}

func (Task) TableName() string {
	return "tasks"
}

// TagIDs returns the ids of the tags attached to this task.
func (t *Task) TagIDs() []int {
	ids := make([]int, 0, len(t.TaskTags))
	for _, tt := range t.TaskTags {
		ids = append(ids, tt.TagID)
	}
	return ids
}

// IsDueOn reports whether the task falls due on the given day and is still open.
func (t *Task) IsDueOn(day time.Time) bool {
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2 && t.Status != TaskStatusCompleted
}
