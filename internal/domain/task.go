package domain

import "time"

type Task struct {
	ID          string
	UserID      string // owner; not enforced by storage
	Title       string
	Description string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type NewTask struct {
	UserID      string
	Title       string
	Description string
	IsCompleted bool
}

// TaskUpdate carries a partial update. A nil field is left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	IsCompleted *bool
}

// BelongsTo reports whether userID owns the task.
func (t *Task) BelongsTo(userID string) bool {
	return t.UserID == userID
}
