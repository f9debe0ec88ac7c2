package handler

import (
	"mfgmarket/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	productHandler      *ProductHandler
	conversationHandler *ConversationHandler
	adminHandler        *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, authUseCase)
	productHandler = NewProductHandler(productUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
