package domain

import (
	"fmt"
	"time"
)

// CalendarEntry is a scheduled event on the user's calendar.
type CalendarEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	AllDay      bool      `json:"allDay"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *CalendarEntry) GetID() string { return e.ID }

func (e *CalendarEntry) SetID(id string) { e.ID = id }

func (e *CalendarEntry) GetUserID() string { return e.UserID }

func (e *CalendarEntry) SetUserID(id string) { e.UserID = id }

func (e *CalendarEntry) GetCreatedAt() time.Time { return e.CreatedAt }

func (e *CalendarEntry) SetCreatedAt(ts time.Time) { e.CreatedAt = ts }

func (e *CalendarEntry) GetUpdatedAt() time.Time { return e.UpdatedAt }

func (e *CalendarEntry) SetUpdatedAt(ts time.Time) { e.UpdatedAt = ts }

func (e *CalendarEntry) Validate() error {
	if err := validateStruct("calendar entry", e); err != nil {
		return err
	}
	if e.EndTime.Before(e.StartTime) {
		return fmt.Errorf("%w: calendar entry ends before it starts", ErrInvalid)
	}
	return nil
}
