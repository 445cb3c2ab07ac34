package domain

import "time"

// Note is a free-form text note.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Note) GetID() string { return n.ID }

func (n *Note) SetID(id string) { n.ID = id }

func (n *Note) GetUserID() string { return n.UserID }

func (n *Note) SetUserID(id string) { n.UserID = id }

func (n *Note) GetCreatedAt() time.Time { return n.CreatedAt }

func (n *Note) SetCreatedAt(ts time.Time) { n.CreatedAt = ts }

func (n *Note) GetUpdatedAt() time.Time { return n.UpdatedAt }

func (n *Note) SetUpdatedAt(ts time.Time) { n.UpdatedAt = ts }

func (n *Note) Validate() error {
	return validateStruct("note", n)
}
