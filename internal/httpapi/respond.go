package httpapi

import "github.com/gofiber/fiber/v2"

// respondError writes the JSON error envelope. The underlying error text is
// only exposed on server errors; 4xx responses carry the message alone.
func respondError(c *fiber.Ctx, status int, msg string, err error) error {
	body := fiber.Map{"msg": msg}
	if err != nil && status >= fiber.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
