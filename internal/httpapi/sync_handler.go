package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/domain"
	"github.com/ArinDixit06/prod-app/internal/sync"
)

type syncRequest struct {
	UserID        string                  `json:"userId"`
	Todos         []*domain.Task          `json:"todos"`
	Notes         []*domain.Note          `json:"notes"`
	CalendarTasks []*domain.CalendarEntry `json:"calendarTasks"`
}

type syncResponse struct {
	Msg           string                  `json:"msg"`
	Todos         []*domain.Task          `json:"todos"`
	Notes         []*domain.Note          `json:"notes"`
	CalendarTasks []*domain.CalendarEntry `json:"calendarTasks"`
}

func (s *Server) handleSync(c *fiber.Ctx) error {
	owner := auth.UserID(c)

	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	// Ownership is derived from the verified token. A userId in the body is
	// tolerated for older clients but must agree with it.
	if req.UserID != "" && req.UserID != owner {
		return respondError(c, fiber.StatusForbidden, "User ID does not match authenticated user", nil)
	}

	res, err := s.coord.Sync(c.Context(), sync.Batch{
		UserID:        owner,
		Todos:         req.Todos,
		Notes:         req.Notes,
		CalendarTasks: req.CalendarTasks,
	})
	if errors.Is(err, sync.ErrMissingUser) {
		return respondError(c, fiber.StatusBadRequest, "User ID is required for sync operations.", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error during sync", err)
	}

	return c.JSON(syncResponse{
		Msg:           "Sync completed successfully",
		Todos:         res.Todos,
		Notes:         res.Notes,
		CalendarTasks: res.CalendarTasks,
	})
}
