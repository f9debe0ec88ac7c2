package router

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/adapter/api/handler"
	"mfgmarket/internal/adapter/api/middleware"
)

func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.Use(authMiddleware.RequireActive)

	conversations.GET("", conversationHandler.ListConversations)
	conversations.GET("/:id", conversationHandler.GetConversation)

	// Starting a thread and sending messages are mutating actions and
	// need the verified tier on top.
	conversations.POST("", conversationHandler.CreateConversation, authMiddleware.RequireVerified)
	conversations.POST("/:id/messages", conversationHandler.SendMessage, authMiddleware.RequireVerified)
}
