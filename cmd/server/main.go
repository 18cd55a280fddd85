package main

import (
	"context"
	"log"
	"net/http"

	"vinolog/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vinolog/internal/auth"
	"vinolog/internal/cache"
	"vinolog/internal/config"
	"vinolog/internal/db"
	"vinolog/internal/handler"
	"vinolog/internal/model"
	"vinolog/internal/repository"
	"vinolog/internal/router"
	"vinolog/internal/service"
	"vinolog/internal/storage"
)

// @title Wine Tasting Diary API
// @version 1.0
// @description Personal wine-tasting diary with a per-user wine catalog, tasting records, sensory analyses, and image uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wine{},
		&model.Tasting{},
		&model.VisualAnalysis{},
		&model.OlfactoryAnalysis{},
		&model.GustatoryAnalysis{},
		&model.Upload{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	objectStore, err := storage.NewMinioStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("object store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	wineRepo := repository.NewWineRepository(gormDB)
	tastingRepo := repository.NewTastingRepository(gormDB)
	uploadRepo := repository.NewUploadRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	wineService := service.NewWineService(wineRepo, objectStore, cacheClient)
	tastingService := service.NewTastingService(tastingRepo, wineRepo, cacheClient)
	uploadService := service.NewUploadService(uploadRepo, wineRepo, objectStore)
	statsService := service.NewStatsService(tastingRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	wineHandler := handler.NewWineHandler(wineService)
	tastingHandler := handler.NewTastingHandler(tastingService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		wineHandler,
		tastingHandler,
		uploadHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
