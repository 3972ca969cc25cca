package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sriramnerella/portfolio-server/src/config"
	"github.com/sriramnerella/portfolio-server/src/content"
	"github.com/sriramnerella/portfolio-server/src/database"
	"github.com/sriramnerella/portfolio-server/src/handlers"
	"github.com/sriramnerella/portfolio-server/src/logging"
	"github.com/sriramnerella/portfolio-server/src/middleware"
	"github.com/sriramnerella/portfolio-server/src/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Str("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Load portfolio content
	siteContent, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load site content")
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize session signing
	if err := middleware.SetSessionSecret(cfg.SessionSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session secret")
	}

	// Resolve the admin credential: an explicit hash wins, otherwise the
	// plain password is hashed at startup
	passwordHash := cfg.AdminPasswordHash
	if passwordHash == "" {
		passwordHash, err = services.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}
	}

	// Initialize services
	messageService := services.NewMessageService(db.GetPool())
	adminService := services.NewAdminService(cfg.AdminUsername, passwordHash)

	var notifier *services.NotificationService
	if cfg.MailgunAPIKey != "" && cfg.MailgunDomain != "" {
		notifier = services.NewNotificationService(
			cfg.MailgunDomain,
			cfg.MailgunAPIKey,
			cfg.MailgunFromEmail,
			cfg.MailgunFromName,
			cfg.ContactRecipient,
			time.Duration(cfg.NotifyTimeout)*time.Second,
		)
		log.Info().Str("domain", cfg.MailgunDomain).Msg("contact notifications enabled")
	} else {
		log.Warn().Msg("Mailgun credentials not configured - contact notifications will be skipped")
	}

	// Create Gin router
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"https://sriramnerella.dev", "http://localhost:" + cfg.Port},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.LoadHTMLGlob("templates/*.html")

	setupRoutes(router, cfg, db, siteContent, messageService, adminService, notifier)

	// HTTP server with timeouts to protect against slow clients
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *database.Database,
	siteContent *content.Content,
	messageService *services.MessageService,
	adminService *services.AdminService,
	notifier *services.NotificationService,
) {
	pagesHandler := handlers.NewPagesHandler(siteContent, cfg.ResumePath)
	contactHandler := handlers.NewContactHandler(messageService, notifier)
	adminHandler := handlers.NewAdminHandler(adminService, messageService, cfg.ResumePath)
	healthHandler := handlers.NewHealthHandler(db)

	// Public pages
	router.GET("/", pagesHandler.HandleHome)
	router.GET("/about", pagesHandler.HandleAbout)
	router.GET("/projects", pagesHandler.HandleProjects)
	router.GET("/achievements", pagesHandler.HandleAchievements)
	router.GET("/contact", pagesHandler.HandleContact)
	router.GET("/download-resume", pagesHandler.HandleDownloadResume)
	router.NoRoute(pagesHandler.HandleNotFound)

	// Contact form submission, rate limited per IP
	router.POST("/contact", middleware.ContactRateLimitMiddleware(), contactHandler.HandleSubmit)

	// Admin authentication
	router.GET("/admin/login", adminHandler.HandleLoginPage)
	router.POST("/admin/login", adminHandler.HandleLogin)
	router.GET("/admin/logout", adminHandler.HandleLogout)

	// Admin routes behind the session guard
	authorized := router.Group("/admin", middleware.RequireAdmin())
	authorized.GET("/dashboard", adminHandler.HandleDashboard)
	authorized.POST("/delete-message/:id", adminHandler.HandleDeleteMessage)
	authorized.POST("/upload-resume", adminHandler.HandleUploadResume)

	// Health check
	router.GET("/health", healthHandler.HandleHealth)

	// Static assets
	router.Static("/static", cfg.PublicDir)
	router.StaticFile("/robots.txt", cfg.PublicDir+"/robots.txt")
}
