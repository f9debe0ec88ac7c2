package router

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/adapter/api/handler"
	"mfgmarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/verify", adminHandler.VerifyUser)
	admin.PUT("/users/:id/activate", adminHandler.ActivateUser)
	admin.PUT("/users/:id/deactivate", adminHandler.DeactivateUser)
	admin.GET("/products", adminHandler.ListProducts)
}
