package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/ideaboard/backend/docs"
	"github.com/ideaboard/backend/internal/auth/middleware"
	"github.com/ideaboard/backend/internal/auth/service"
	"github.com/ideaboard/backend/internal/config"
	"github.com/ideaboard/backend/internal/database"
	"github.com/ideaboard/backend/internal/handlers"
	"github.com/ideaboard/backend/internal/logger"
	loggerMiddleware "github.com/ideaboard/backend/internal/logger/middleware"
	"github.com/ideaboard/backend/internal/middlewares"
	"github.com/ideaboard/backend/internal/repositories"
	"github.com/ideaboard/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Idea Board API
// @version 1.0
// @description Multi-user idea board: registration, bearer token login, users and ideas.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Idea Board API")

	ctx := context.Background()

	// Connect to database
	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db, cfg.MigrationsPath, logger.Logger); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize credential store and token service
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenGenerator := service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	ideaRepo := repositories.NewIdeaRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, hasher, tokenGenerator, logger.Logger)
	userService := services.NewUserService(userRepo, hasher, logger.Logger)
	ideaService := services.NewIdeaService(ideaRepo, logger.Logger)

	// Seed the admin account before accepting requests
	if err := authService.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	ideaHandler := handlers.NewIdeaHandler(ideaService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenGenerator, userRepo, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middlewares.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	healthHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	userHandler.RegisterRoutes(r, authMiddleware)
	ideaHandler.RegisterRoutes(r, authMiddleware)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
