package routes

import (
	"Backend-Slotify/src/middleware"
	"Backend-Slotify/src/services/teams"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	// ให้ middleware เช็ค membership ผ่าน service จริง
	middleware.Teams = teams.Checker{}

	api := app.Group("/api")

	// เรียกใช้ route ของแต่ละ module
	authRoutes(api)
	bookingFormRoutes(api)
	adminRoutes(api)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
