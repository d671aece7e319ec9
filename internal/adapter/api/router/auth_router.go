package router

import (
	"github.com/labstack/echo/v4"

	"dormigo/internal/adapter/api/handler"
	"dormigo/internal/adapter/api/middleware"
	"dormigo/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup, middleware.RateLimit(limiter, "signup"))
	auth.POST("/login", authHandler.Login, middleware.RateLimit(limiter, "login"))
}
