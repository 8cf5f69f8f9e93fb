package middleware

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimiter is the injected counter store consulted by RateLimited. The
// store must increment-and-check atomically per key; this layer only asks.
type RateLimiter interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Limiter is wired in main. Nil means no counter store is configured and
// rate-limited routes let everything through (development mode).
var Limiter RateLimiter

// RateLimited ใช้หลัง AuthJWT เท่านั้น - นับ request ต่อ user ต่อ window
func RateLimited(limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userId").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not authenticated",
				"code":  "UNAUTHORIZED",
			})
		}

		if Limiter == nil {
			return c.Next()
		}

		limited, err := Limiter.Check(c.Context(), userID, limit, window)
		if err != nil {
			log.Println("⚠️ Rate-limit check failed:", err)
			return c.Next()
		}
		if limited {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
				"code":  "TOO_MANY_REQUESTS",
			})
		}

		return c.Next()
	}
}
