package routes

import (
	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// checkInOutRoutes กำหนดเส้นทางสำหรับ check-in API
func checkInOutRoutes(router fiber.Router, cc *controllers.CheckInController) {
	checkin := router.Group("/checkin", middleware.AuthJWT)
	checkin.Get("/", cc.GetCheckinStatus)
	checkin.Post("/select", cc.SelectLocation)
	checkin.Post("/confirm", cc.ConfirmLocation)
	checkin.Post("/cancel", cc.CancelLocation)
	checkin.Post("/start", cc.StartShift)
	checkin.Post("/end", cc.EndShift)

	router.Get("/dashboard", middleware.AuthJWT, cc.GetDashboard)
}
