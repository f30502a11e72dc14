package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonData writes data as the response body with the given HTTP status code.
func jsonData(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// NotFound answers any unmatched API path.
func NotFound(c fiber.Ctx) error {
	return jsonError(c, fiber.StatusNotFound, "not found")
}
