package controllers

import (
	"Backend-PlanujSmeny/src/database"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"redis":  database.RedisClient != nil,
		"mongo":  database.LocationCollection != nil,
	})
}
