package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"dormigo/internal/infrastructure/ratelimit"
	"dormigo/pkg/errors"
	"dormigo/pkg/logger"
	"dormigo/pkg/response"
)

// RateLimit rejects requests once the caller's token bucket for the given
// action runs dry. Keyed by client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, retryAfter := limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s (retry in %v)", ip, action, retryAfter)
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
				return response.Error(c, errors.TooManyRequests("Too many attempts, please try again later"))
			}

			return next(c)
		}
	}
}
