package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ArinDixit06/prod-app/internal/domain"
)

// The patch functions implement PUT's partial-update semantics: a field the
// body omits, or sends as an empty string, leaves the stored value alone.
// Booleans only change when the body carries them explicitly.

func patchTask(c *fiber.Ctx, dst *domain.Task) error {
	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		DueDate     *time.Time `json:"dueDate"`
		Completed   *bool      `json:"completed"`
	}
	if err := c.BodyParser(&body); err != nil {
		return err
	}
	if body.Title != nil && *body.Title != "" {
		dst.Title = *body.Title
	}
	if body.Description != nil && *body.Description != "" {
		dst.Description = *body.Description
	}
	if body.DueDate != nil {
		dst.DueDate = body.DueDate
	}
	if body.Completed != nil {
		dst.Completed = *body.Completed
	}
	return nil
}

func patchNote(c *fiber.Ctx, dst *domain.Note) error {
	var body struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return err
	}
	if body.Title != nil && *body.Title != "" {
		dst.Title = *body.Title
	}
	if body.Content != nil && *body.Content != "" {
		dst.Content = *body.Content
	}
	return nil
}

func patchCalendarEntry(c *fiber.Ctx, dst *domain.CalendarEntry) error {
	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		StartTime   *time.Time `json:"startTime"`
		EndTime     *time.Time `json:"endTime"`
		AllDay      *bool      `json:"allDay"`
		Location    *string    `json:"location"`
	}
	if err := c.BodyParser(&body); err != nil {
		return err
	}
	if body.Title != nil && *body.Title != "" {
		dst.Title = *body.Title
	}
	if body.Description != nil && *body.Description != "" {
		dst.Description = *body.Description
	}
	if body.StartTime != nil && !body.StartTime.IsZero() {
		dst.StartTime = *body.StartTime
	}
	if body.EndTime != nil && !body.EndTime.IsZero() {
		dst.EndTime = *body.EndTime
	}
	if body.AllDay != nil {
		dst.AllDay = *body.AllDay
	}
	if body.Location != nil && *body.Location != "" {
		dst.Location = *body.Location
	}
	return nil
}
