package main

import (
	_ "Wardrobe/docs"
	"Wardrobe/internal/config"
	"Wardrobe/internal/events"
	"Wardrobe/internal/handlers"
	"Wardrobe/internal/logger"
	"Wardrobe/internal/middleware"
	"Wardrobe/internal/repo"
	"Wardrobe/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

//go:generate swag init -g main.go -d .,../../internal/handlers,../../internal/model -o ../../docs --outputTypes go,json

const shutdownTimeout = 10 * time.Second

// @title Wardrobe API
// @version 1.0
// @description Personal wardrobe catalog: CRUD over clothing items with category and season filters.
// @BasePath /
func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = sugar.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	// публикация событий включается только при заданных брокерах
	var publisher events.Publisher
	if cfg.EventsEnabled() {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, sugar)
		defer func() {
			if err := kp.Close(); err != nil {
				sugar.Errorw("Failed to close kafka writer", "error", err)
			}
		}()
		publisher = kp
	}

	itemRepo := repo.NewClothingItemRepository(gormDB)
	itemService := service.NewClothingItemService(itemRepo, publisher, sugar)

	h := handlers.NewHandler(itemService, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
		"CORSOrigins", cfg.CORSOrigins,
		"KafkaBrokers", cfg.KafkaBrokers,
		"KafkaTopic", cfg.KafkaTopic,
	)

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		sugar.Info("Shutdown signal received, stopping HTTP server...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP server shutdown error", "error", err)
	}

	sugar.Info("HTTP server stopped gracefully")
	return nil
}
