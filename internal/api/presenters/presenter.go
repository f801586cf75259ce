package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse wraps handler output in the standard success envelope.
func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ErrorResponse wraps a failure in the standard error envelope.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	payload := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	return c.Status(code).JSON(payload)
}
