package router

import (
	"github.com/labstack/echo/v4"

	"dormigo/internal/adapter/api/handler"
	"dormigo/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	public := e.Group("/api/category/public")
	public.GET("/all", categoryHandler.ListPublicCategories)
	public.GET("/:id", categoryHandler.GetPublicCategory)

	admin := e.Group("/api/category")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", categoryHandler.CreateCategory)
	admin.DELETE("/:id", categoryHandler.DeleteCategory)
}
