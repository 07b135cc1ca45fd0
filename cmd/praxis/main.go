package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/api"
	"github.com/praxislabs/praxis/internal/config"
	"github.com/praxislabs/praxis/internal/store"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		zapLogger.Fatal("config load failed", zap.Error(err))
	}

	dataStore := store.New()
	if cfg.SeedDemoData {
		dataStore = store.NewSeeded()
	}

	handler, err := api.NewHandler(dataStore, zapLogger)
	if err != nil {
		zapLogger.Fatal("handler init failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "Praxis",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("praxis listening",
		zap.String("port", cfg.Server.Port),
		zap.Bool("seeded", cfg.SeedDemoData))
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
