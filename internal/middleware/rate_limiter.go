package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/herbarium/herbarium-backend/internal/models"
)

// AuthRateLimiter caps authentication attempts per client IP within a
// fixed window. Storage is pluggable: nil keeps the counters in process
// memory; a shared fiber.Storage makes the limit hold across instances.
func AuthRateLimiter(max int, window time.Duration, store fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    store,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(models.ErrorResponse(fiber.StatusTooManyRequests, "Too many requests, try again later"))
		},
	})
}
