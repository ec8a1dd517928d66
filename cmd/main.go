package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "ads-campaigns/internal/adapter/http"
	"ads-campaigns/internal/adapter/memory"
	"ads-campaigns/internal/adapter/postgres"
	"ads-campaigns/internal/adapter/usecase"
	"ads-campaigns/internal/config"
	"ads-campaigns/internal/config/configs"
	"ads-campaigns/internal/core/port"
	"ads-campaigns/internal/db"
	"ads-campaigns/internal/observability"
)

// main is the entry point of the banner selection service. It loads
// configuration, prepares the storage backend (migrations and demo data
// when configured), then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.String("driver", cfg.Storage.Driver), slog.Any("error", err))
		return
	}
	defer closeStore()

	metrics := observability.NewMetrics("")
	svc := usecase.NewBannerUseCase(store, usecase.WithMetrics(metrics))

	handler := httpadapter.NewHandler(svc, logger, metrics.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}

// openStore builds the configured storage backend and returns a function
// releasing it.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.BannerStore, func(), error) {
	if cfg.Storage.Driver == configs.StorageDriverMemory {
		store := memory.NewBannerStore()
		if cfg.Storage.SeedDemo {
			if err := db.Load(ctx, store, db.GenerateDemo(cfg.Storage.Seed)); err != nil {
				return nil, nil, err
			}
			logger.Info("demo data loaded", slog.String("driver", cfg.Storage.Driver))
		}
		return store, func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Storage.SeedDemo {
		if err = db.Seed(ctx, pool, db.GenerateDemo(cfg.Storage.Seed)); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data loaded", slog.String("driver", cfg.Storage.Driver))
	}

	return postgres.NewBannerRepository(pool), pool.Close, nil
}
