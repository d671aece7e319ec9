package router

import (
	"github.com/labstack/echo/v4"

	"dormigo/internal/adapter/api/middleware"
	"dormigo/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, limiter)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupCategoryRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
