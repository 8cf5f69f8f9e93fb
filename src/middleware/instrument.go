package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Instrument records a named measurement around the rest of the chain. It is
// always the first stage and never rejects; rejections further down still get
// measured (outcome error).
func Instrument(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		outcome := "ok"
		status := c.Response().StatusCode()
		if err != nil || status >= fiber.StatusBadRequest {
			outcome = "error"
		}
		log.Printf("⏱️ [%s] %s %s -> %s (%d) in %v", name, c.Method(), c.Path(), outcome, status, time.Since(start))

		return err
	}
}
