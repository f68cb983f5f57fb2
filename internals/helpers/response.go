package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonError: error generic, body {"error": message}.
// Catatan: detail error internal (query, path file) tidak boleh ikut ke client.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if message == "" || status >= 500 {
		if status >= 500 {
			message = "Internal Server Error"
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// JsonValidationError: khusus error validasi (validator.v10) → 400
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": errorsMap,
	})
}
