// error_utils.go
package utils

import (
	"Backend-PlanujSmeny/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorCode is HandleError with a machine readable code, e.g. NO_LOCATION_SELECTED.
func HandleErrorCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}
