package router

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/adapter/api/handler"
	"mfgmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.GET("/:id", userHandler.GetPublicProfile)

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)
	me.Use(authMiddleware.RequireActive)

	me.GET("", userHandler.GetMe)
	me.PUT("", userHandler.UpdateMe)
	me.POST("/verify-gst", userHandler.VerifyMyGST)
}
