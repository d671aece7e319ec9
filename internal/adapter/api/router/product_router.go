package router

import (
	"github.com/labstack/echo/v4"

	"dormigo/internal/adapter/api/handler"
	"dormigo/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	public := e.Group("/api/products/public")
	public.Use(authMiddleware.OptionalAuthenticate)
	public.GET("/all", productHandler.ListPublicProducts)
	public.GET("/search", productHandler.SearchPublicProducts)
	public.GET("/:id", productHandler.GetPublicProduct)

	products := e.Group("/api/products")
	products.Use(authMiddleware.Authenticate)
	products.GET("/my", productHandler.ListMyProducts)
	products.POST("", productHandler.CreateProduct)
	products.POST("/:id/images", productHandler.UploadProductImage)
	products.DELETE("/:id", productHandler.DeleteProduct)
}
