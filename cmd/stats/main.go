// Command stats runs the hit statistics server.
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
	"time"

	"explorewithme/config"
	httpdelivery "explorewithme/internal/delivery/http"
	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/repository/postgres"
	"explorewithme/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg).With("service", "stats")
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.ValidateStats(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.StatsDBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(db, postgres.MigrationsStats); err != nil {
		return err
	}

	statsService := services.NewStatsService(postgres.NewStatsRepository(db))
	router := httpdelivery.NewStatsRouter(logger, controllers.NewStatsController(logger, statsService),
		cfg.RateLimitRPS, cfg.RateLimitBurst)

	srv := &http.Server{
		Addr:         ":" + cfg.StatsPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
