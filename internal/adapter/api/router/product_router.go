package router

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/adapter/api/handler"
	"mfgmarket/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/v1/categories", productHandler.ListCategories)

	// Public browse endpoints personalize through the optional principal:
	// the owner viewing a listing does not bump its view counter.
	public := e.Group("/v1/products")
	public.Use(authMiddleware.OptionalAuth)
	public.GET("", productHandler.List)
	public.GET("/:id", productHandler.GetByID)

	// Mutations require the verified tier.
	verified := e.Group("/v1/products")
	verified.Use(authMiddleware.Authenticate)
	verified.Use(authMiddleware.RequireVerified)
	verified.POST("", productHandler.Create)
	verified.PUT("/:id", productHandler.Update)
	verified.DELETE("/:id", productHandler.Delete)
	verified.POST("/:id/images", productHandler.UploadImage)
}
