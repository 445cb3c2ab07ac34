// Package httpapi wires the Fiber application: auth routes, the per-kind
// CRUD resources, and the sync endpoint.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/domain"
	"github.com/ArinDixit06/prod-app/internal/store"
	"github.com/ArinDixit06/prod-app/internal/sync"
)

type Server struct {
	stores store.Stores
	tokens *auth.Tokens
	coord  *sync.Coordinator
	log    zerolog.Logger
}

func New(stores store.Stores, tokens *auth.Tokens, coord *sync.Coordinator, log zerolog.Logger) *Server {
	return &Server{stores: stores, tokens: tokens, coord: coord, log: log}
}

// App builds the routed Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "prod-app",
		DisableStartupMessage: true,
	})
	app.Use(cors.New())
	app.Use(requestLogger(s.log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	api := app.Group("/api")
	api.Post("/auth/register", s.handleRegister)
	api.Post("/auth/login", s.handleLogin)

	protect := auth.Middleware(s.tokens)

	newResource("Todo", s.stores.Tasks,
		func() *domain.Task { return &domain.Task{} }, patchTask).
		register(api.Group("/todos", protect))
	newResource("Note", s.stores.Notes,
		func() *domain.Note { return &domain.Note{} }, patchNote).
		register(api.Group("/notes", protect))
	newResource("Calendar task", s.stores.Calendar,
		func() *domain.CalendarEntry { return &domain.CalendarEntry{} }, patchCalendarEntry).
		register(api.Group("/calendar-tasks", protect))

	// Sync sits behind the same token check as the CRUD routes; the batch
	// owner is the verified token subject, never the request body.
	api.Post("/sync", protect, s.handleSync)

	return app
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("request")
		return err
	}
}
