package domain

import "time"

// Task is a todo item.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) GetID() string { return t.ID }

func (t *Task) SetID(id string) { t.ID = id }

func (t *Task) GetUserID() string { return t.UserID }

func (t *Task) SetUserID(id string) { t.UserID = id }

func (t *Task) GetCreatedAt() time.Time { return t.CreatedAt }

func (t *Task) SetCreatedAt(ts time.Time) { t.CreatedAt = ts }

func (t *Task) GetUpdatedAt() time.Time { return t.UpdatedAt }

func (t *Task) SetUpdatedAt(ts time.Time) { t.UpdatedAt = ts }

func (t *Task) Validate() error {
	return validateStruct("task", t)
}
