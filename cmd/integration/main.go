package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	integrationapp "github.com/klassifikator/backend/internal/application/integration"
	"github.com/klassifikator/backend/internal/infrastructure/clients"
	"github.com/klassifikator/backend/internal/infrastructure/config"
	"github.com/klassifikator/backend/internal/infrastructure/logger"
	"github.com/klassifikator/backend/internal/infrastructure/persistence"
	"github.com/klassifikator/backend/internal/infrastructure/scheduler"
	"github.com/klassifikator/backend/internal/infrastructure/sheets"
	"github.com/klassifikator/backend/internal/infrastructure/telegram"
	"github.com/klassifikator/backend/internal/interfaces/http/handler"
	"github.com/klassifikator/backend/internal/interfaces/http/middleware"
	"github.com/klassifikator/backend/internal/interfaces/http/router"
)

const (
	serviceName = "integration-service"
	defaultPort = "8085"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	port := cfg.App.Port
	if port == "" {
		port = defaultPort
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting integration service",
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
		zap.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		zap.Bool("telegram_enabled", cfg.Telegram.Enabled),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	sheetsClient, err := sheets.NewClient(context.Background(), &cfg.Google)
	if err != nil {
		log.Fatal("Failed to initialize Google Sheets client",
			zap.String("credentials", cfg.Google.CredentialsFilePath),
			zap.Error(err),
		)
	}

	landingClient := clients.NewLandingClient(cfg.Services.LandingURL)
	contentClient := clients.NewContentClient(cfg.Services.ContentURL)
	mediaClient := clients.NewMediaClient(cfg.Services.MediaURL)

	syncRepo := persistence.NewGormSheetsSyncRepository(db.DB)
	syncService := integrationapp.NewSyncService(
		syncRepo,
		sheetsClient,
		landingClient,
		contentClient,
		mediaClient,
		cfg.Domain.Base,
		log,
	)

	telegramClient := telegram.NewClient(&cfg.Telegram, resty.New(), log)
	notificationService := integrationapp.NewNotificationService(
		telegramClient,
		&cfg.Telegram,
		landingClient,
		landingClient,
		log,
	)

	syncScheduler := scheduler.NewSheetsSyncScheduler(scheduler.SheetsSyncSchedulerConfig{
		Enabled:       cfg.Scheduler.Enabled,
		CheckInterval: cfg.Scheduler.CheckInterval,
	}, syncService, log)
	if err := syncScheduler.Start(context.Background()); err != nil {
		log.Fatal("Failed to start sheets sync scheduler", zap.Error(err))
	}
	defer func() {
		if err := syncScheduler.Stop(context.Background()); err != nil {
			log.Error("Error stopping sheets sync scheduler", zap.Error(err))
		}
	}()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	handler.NewHealthHandler(serviceName).Register(engine)

	router.NewRouter(engine).
		Register(handler.NewIntegrationHandler(syncService, notificationService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
