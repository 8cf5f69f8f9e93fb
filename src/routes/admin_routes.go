package routes

import (
	"Backend-Slotify/src/controllers"
	"Backend-Slotify/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API
func adminRoutes(router fiber.Router) {
	admin := router.Group("/admin")
	admin.Use(middleware.Instrument("admin"))
	admin.Use(middleware.AuthJWT)
	admin.Use(middleware.AdminRequired)

	admin.Get("/users", controllers.GetUsers)        // ดึงผู้ใช้ทั้งหมด
	admin.Get("/users/:id", controllers.GetUserByID) // ดึงข้อมูลผู้ใช้ตาม ID
}
