package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classpoints/internal/config"
	"classpoints/internal/database"
	"classpoints/internal/handlers"
	"classpoints/internal/repository"
	"classpoints/internal/security"
	"classpoints/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	tokens := security.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo)
	directoryService := service.NewDirectoryService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo, settingsRepo)
	leaderboardService := service.NewLeaderboardService(sessionRepo, userRepo)
	progressService := service.NewProgressService(sessionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	backupService := service.NewBackupService(userRepo, sessionRepo, settingsRepo)

	// Initialize handlers
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(tokens, directoryService, loginLimiter)
	authHandler := handlers.NewAuthHandler(authService, tokens)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	progressHandler := handlers.NewProgressHandler(progressService)
	adminHandler := handlers.NewAdminHandler(directoryService, settingsService, backupService)
	statusHandler := handlers.NewStatusHandler(userRepo)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /api/status", statusHandler.Get)
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))

	// Authenticated routes
	mux.HandleFunc("GET /api/leaderboard", middleware.RequireAuth(leaderboardHandler.Get))
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.Get))

	// Teacher routes
	mux.HandleFunc("GET /api/sessions/{date}", middleware.RequireTeacher(sessionHandler.Get))
	mux.HandleFunc("PUT /api/sessions/{date}", middleware.RequireTeacher(sessionHandler.Save))
	mux.HandleFunc("GET /api/users", middleware.RequireTeacher(adminHandler.ListUsers))
	mux.HandleFunc("POST /api/users", middleware.RequireTeacher(adminHandler.CreateUser))
	mux.HandleFunc("PUT /api/users/{id}", middleware.RequireTeacher(adminHandler.UpdateUser))
	mux.HandleFunc("DELETE /api/users/{id}", middleware.RequireTeacher(adminHandler.DeleteUser))
	mux.HandleFunc("GET /api/settings", middleware.RequireTeacher(adminHandler.GetSettings))
	mux.HandleFunc("PUT /api/settings", middleware.RequireTeacher(adminHandler.UpdateSettings))
	mux.HandleFunc("GET /api/export", middleware.RequireTeacher(adminHandler.Export))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
