package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/domain"
	"github.com/ArinDixit06/prod-app/internal/store"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if creds.Email == "" || creds.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Email and password are required", nil)
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	user := &domain.User{Email: creds.Email, PasswordHash: hash}
	if err := user.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	created, err := s.stores.Users.CreateUser(c.Context(), user)
	if errors.Is(err, store.ErrEmailTaken) {
		return respondError(c, fiber.StatusBadRequest, "User already exists", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	s.log.Info().Str("user", created.ID).Msg("user registered")
	return c.Status(fiber.StatusCreated).JSON(authResponse{
		ID:    created.ID,
		Email: created.Email,
		Token: token,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	user, err := s.stores.Users.GetUserByEmail(c.Context(), creds.Email)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	}
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	if !auth.CheckPassword(user.PasswordHash, creds.Password) {
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Server error", err)
	}
	return c.JSON(authResponse{
		ID:    user.ID,
		Email: user.Email,
		Token: token,
	})
}
