package handler

import "github.com/gofiber/fiber/v2"

// OK writes the success envelope with the given payload.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Fail writes the failure envelope with the given status and message.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
