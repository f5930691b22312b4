package models

const TagTitleMaxLength = 50

type Tag struct {
	ID       int       `gorm:"primaryKey"`
	Title    string    `gorm:"size:50;not null;uniqueIndex"`
	TaskTags []TaskTag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (Tag) TableName() string {
	return "tags"
}

// TaskTag is the tasks<->tags association row. Composite key, no identity of
// its own; it lives and dies with its owning task. The tag side is a weak
// reference: tags are shared across tasks, never duplicated with them.
type TaskTag struct {
	TaskID int `gorm:"primaryKey;autoIncrement:false"`
	TagID  int `gorm:"primaryKey;autoIncrement:false"`
}

func (TaskTag) TableName() string {
	return "task_tags"
}
