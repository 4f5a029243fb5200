package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

// NewUploadLimiter limits resume uploads per client IP with a sliding one
// minute window. max <= 0 disables the limit.
func NewUploadLimiter(max int) fiber.Handler {
	if max <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return NewAppError(fiber.StatusTooManyRequests, "Too many uploads, try again later", nil)
		},
	})
}
