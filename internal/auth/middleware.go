package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the request-local key under which Middleware stores the
// verified user id.
const UserIDKey = "userID"

// Middleware rejects requests without a valid bearer token and stashes the
// verified subject in the request locals.
func Middleware(tokens *Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"msg": "Not authorized, no token"})
		}
		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"msg": "Not authorized, token failed"})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the verified user id set by Middleware, or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
