package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	landingapp "github.com/klassifikator/backend/internal/application/landing"
	"github.com/klassifikator/backend/internal/infrastructure/cache"
	"github.com/klassifikator/backend/internal/infrastructure/config"
	"github.com/klassifikator/backend/internal/infrastructure/logger"
	"github.com/klassifikator/backend/internal/infrastructure/persistence"
	"github.com/klassifikator/backend/internal/interfaces/http/handler"
	"github.com/klassifikator/backend/internal/interfaces/http/middleware"
	"github.com/klassifikator/backend/internal/interfaces/http/router"
)

const (
	serviceName = "landing-service"
	defaultPort = "8081"
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

	log.Info("Starting landing service",
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
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

	store, err := cache.NewStore(&cfg.Redis, &cfg.Cache)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}()

	orgRepo := persistence.NewGormOrganizationRepository(db.DB)
	landingRepo := persistence.NewGormLandingRepository(db.DB)
	seoRepo := persistence.NewGormSeoDataRepository(db.DB)

	orgService := landingapp.NewOrganizationService(orgRepo, store)
	landingService := landingapp.NewLandingService(landingRepo, orgRepo, store)
	seoService := landingapp.NewSeoService(seoRepo, landingRepo)

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
		Register(handler.NewOrganizationHandler(orgService)).
		Register(handler.NewLandingHandler(landingService, seoService)).
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
