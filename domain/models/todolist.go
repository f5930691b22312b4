package models

const (
	TodoListTitleMinLength = 3
	TodoListTitleMaxLength = 70
)

type TodoList struct {
	ID     int    `gorm:"primaryKey"`
	Title  string `gorm:"size:70;not null"`
	UserID string `gorm:"size:450;not null;index"`
	Tasks  []Task `gorm:"foreignKey:TodoListID;constraint:OnDelete:CASCADE"`

	// Concurrency stamp. Persisted but not checked on update (last write wins).
	DataVersion string `gorm:"size:36"`
}

func (TodoList) TableName() string {
	return "todo_lists"
}

// EqualsStructurally compares two lists by shape: same title and same task
// count, ignoring ids. Used for duplicate-detection heuristics only.
func (l *TodoList) EqualsStructurally(other *TodoList) bool {
	if other == nil {
		return false
	}
	if l.Title != other.Title {
		return false
	}
	return len(l.Tasks) == len(other.Tasks)
}

// IsSame is the strict variant: shape plus identity.
func (l *TodoList) IsSame(other *TodoList) bool {
	return l.EqualsStructurally(other) && l.ID == other.ID
}
