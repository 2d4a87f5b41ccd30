package routes

import (
	"Backend-PlanujSmeny/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Controllers รวม controller ทั้งหมดที่ router ต้องใช้
type Controllers struct {
	Auth      *controllers.AuthController
	CheckIn   *controllers.CheckInController
	Locations *controllers.LocationController
	Clock     *controllers.ClockController
}

func InitRoutes(app *fiber.App, ctrl Controllers) {
	api := app.Group("/api")
	authRoutes(api, ctrl.Auth)
	locationRoutes(api, ctrl.Locations)
	checkInOutRoutes(api, ctrl.CheckIn)

	pageRoutes(app, ctrl.Auth, ctrl.CheckIn)

	app.Get("/clock", ctrl.Clock.Stream)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", controllers.Health)
}
