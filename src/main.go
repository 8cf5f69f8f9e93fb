package main

import (
	_ "Backend-Slotify/docs"
	"Backend-Slotify/src/database"
	"Backend-Slotify/src/jobs"
	"Backend-Slotify/src/middleware"
	"Backend-Slotify/src/routes"
	"Backend-Slotify/src/seeder"
	"Backend-Slotify/src/services"
	"Backend-Slotify/src/utils"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// seed ข้อมูลเริ่มต้นเมื่อเปิด flag ไว้เท่านั้น
	if os.Getenv("SEED_ON_START") == "true" {
		passwords, err := services.SeedInitialData()
		if err != nil {
			log.Fatalf("Error seeding initial data: %v", err)
		}
		services.PrintGeneratedPasswords(passwords)

		if err := seeder.SeedSampleBookingForms(); err != nil {
			log.Println("⚠️ Failed to seed sample booking forms:", err)
		}
		if err := seeder.SeedSampleResponses(); err != nil {
			log.Println("⚠️ Failed to seed sample responses:", err)
		}
	}

	// rate limiter ใช้ Redis ตัวเดียวกับ cache; ไม่มี Redis = ไม่จำกัด
	middleware.Limiter = utils.NewRedisRateLimiter()

	// worker ประมวลผลคำตอบที่ส่งเข้ามา (ต้องมี Redis)
	if database.RedisURI != "" {
		go func() {
			if err := jobs.StartWorker(database.RedisURI); err != nil {
				log.Println("❌ Asynq worker stopped:", err)
			}
		}()
	}

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	fmt.Println(origins)

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
