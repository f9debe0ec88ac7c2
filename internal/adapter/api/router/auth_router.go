package router

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/adapter/api/handler"
	"mfgmarket/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/refresh", authHandler.Refresh)
	e.GET("/v1/auth/verify-gst/:gst_number", authHandler.VerifyGST)
}
