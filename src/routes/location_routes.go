package routes

import (
	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func locationRoutes(router fiber.Router, lc *controllers.LocationController) {
	locations := router.Group("/locations", middleware.AuthJWT)
	locations.Get("/", lc.GetLocations)       // ดึงสาขาทั้งหมด
	locations.Get("/:id", lc.GetLocationByID) // ดึงสาขาตาม ID
}
