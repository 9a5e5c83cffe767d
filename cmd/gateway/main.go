package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/klassifikator/backend/internal/infrastructure/config"
	"github.com/klassifikator/backend/internal/infrastructure/logger"
	"github.com/klassifikator/backend/internal/interfaces/http/gateway"
)

const defaultPort = "8080"

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

	log.Info("Starting gateway",
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
		zap.String("landing_url", cfg.Services.LandingURL),
		zap.String("content_url", cfg.Services.ContentURL),
		zap.String("template_url", cfg.Services.TemplateURL),
		zap.String("media_url", cfg.Services.MediaURL),
		zap.String("integration_url", cfg.Services.IntegrationURL),
		zap.String("order_url", cfg.Services.OrderURL),
	)

	gw, err := gateway.New(&cfg.Services, log)
	if err != nil {
		log.Fatal("Failed to build gateway", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        gw,
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
