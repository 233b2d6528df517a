package ratelimit

import (
	"github.com/gofiber/fiber/v2"

	"yt-transcript/errors"
)

// Middleware gates a route group with the given limiter, keyed by the
// client address. It rejects before any downstream handler runs.
func Middleware(limiter *Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, quota := limiter.Allow(c.IP()); !ok {
			return errors.RateLimited("ratelimit.Middleware", quota.String())
		}
		return c.Next()
	}
}
