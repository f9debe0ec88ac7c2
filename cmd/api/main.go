package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mfgmarket/internal/adapter/api"
	"mfgmarket/internal/adapter/api/handler"
	apimiddleware "mfgmarket/internal/adapter/api/middleware"
	"mfgmarket/internal/adapter/api/router"
	"mfgmarket/internal/adapter/repository"
	"mfgmarket/internal/infrastructure/auth"
	"mfgmarket/internal/infrastructure/gst"
	"mfgmarket/internal/infrastructure/storage"
	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := repository.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewGormUserRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	conversationRepo := repository.NewGormConversationRepository(db)

	tokenService := auth.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.RefreshTokenExpiry)*24*time.Hour,
	)
	gstClient := gst.NewClient(cfg.GSTVerificationURL, cfg.GSTVerificationAPIKey)
	imageStorage := storage.NewImageStorage(cfg.UploadDirectory, cfg.MaxFileSize, cfg.AllowedImageTypes)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, gstClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, imageStorage)
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo, productRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, productRepo)

	handler.Setup(authUseCase, userUseCase, productUseCase, conversationUseCase, adminUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenService, userRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)

	// Serve processed product images
	e.Static("/uploads", cfg.UploadDirectory)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
