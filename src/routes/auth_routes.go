package routes

import (
	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/logout)
func authRoutes(router fiber.Router, ac *controllers.AuthController) {
	auth := router.Group("/auth")

	auth.Post("/login", ac.LoginUser)                       // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, ac.LogoutUser) // 🚪 logout
}
