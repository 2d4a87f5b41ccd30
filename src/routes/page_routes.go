package routes

import (
	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/middleware"
	"Backend-PlanujSmeny/src/models"

	"github.com/gofiber/fiber/v2"
)

// pageRoutes หน้าเว็บที่ render ฝั่ง server
func pageRoutes(app *fiber.App, ac *controllers.AuthController, cc *controllers.CheckInController) {
	app.Get("/login", ac.LoginPage)
	app.Post("/login", ac.LoginForm)
	app.Post("/logout", middleware.AuthPage, ac.LogoutForm)

	app.Get("/", middleware.AuthPage, cc.DashboardPage)
	app.Get("/admin", middleware.AuthPage, middleware.RequireRole(string(models.UserRoleAdmin)), cc.AdminPage)

	shift := app.Group("/shift", middleware.AuthPage)
	shift.Post("/select/:id", cc.PageSelect)
	shift.Post("/confirm", cc.PageConfirm)
	shift.Post("/cancel", cc.PageCancel)
	shift.Post("/start", cc.PageStart)
	shift.Post("/end", cc.PageEnd)
}
