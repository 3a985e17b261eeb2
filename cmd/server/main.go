package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"customer-listing/internal/config"
	"customer-listing/internal/database"
	"customer-listing/internal/dataset"
	"customer-listing/internal/handlers"
	"customer-listing/internal/models"
	"customer-listing/internal/server"
	"customer-listing/internal/services"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics()

	var dbChecker handlers.DatabaseHealthChecker
	loader := dataset.FileLoader(cfg.Dataset.Path, dataset.WithDelimiter(cfg.Dataset.Delimiter))
	if cfg.UsesDatabase() {
		db, err := database.Initialize(cfg, logger)
		if err != nil {
			logger.Error("failed to initialize database", slog.String("error", err.Error()))
			loader = func(context.Context) ([]models.Customer, error) { return nil, err }
		} else {
			defer db.Close()
			dbChecker = db
			loader = dataset.DatabaseLoader(db.DB)
		}
	}

	repo, err := dataset.Open(ctx, cfg.Dataset.Source, loader, logger, metrics)
	if err != nil {
		logger.Warn("continuing with an empty customer dataset")
	}

	srv := server.New(ctx, cfg, server.Dependencies{
		CustomerRepo: repo,
		Source:       cfg.Dataset.Source,
		DB:           dbChecker,
		Metrics:      metrics,
		Logger:       logger,
	})

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
