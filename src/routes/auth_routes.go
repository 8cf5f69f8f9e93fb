package routes

import (
	"Backend-Slotify/src/controllers"
	"Backend-Slotify/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (login/me/logout)
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Use(middleware.Instrument("auth"))

	auth.Post("/login", controllers.LoginUser) // 🔐 login (rate limited ใน controller)

	// ทุก route ถัดจากนี้ต้องมี token
	auth.Use(middleware.AuthJWT)
	auth.Get("/me", controllers.Me)
	auth.Post("/logout", controllers.LogoutUser)
}
