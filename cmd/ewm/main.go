// Command ewm runs the Explore With Me main service.
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
	_ "explorewithme/docs"
	"explorewithme/internal/adapters/auth"
	"explorewithme/internal/adapters/email"
	"explorewithme/internal/adapters/statsclient"
	httpdelivery "explorewithme/internal/delivery/http"
	"explorewithme/internal/delivery/http/controllers"
	"explorewithme/internal/domain"
	"explorewithme/internal/repository/postgres"
	"explorewithme/internal/services"
)

// @title Explore With Me API
// @version 1.0
// @description Event publication, moderation and participation requests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(db, postgres.MigrationsMain); err != nil {
		return err
	}

	tx := postgres.NewTransactor(db)
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	requestRepo := postgres.NewParticipationRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	compilationRepo := postgres.NewCompilationRepository(db)

	var recorder domain.ViewStatsRecorder = statsclient.NewHTTPRecorder(cfg.StatsServerURL, &http.Client{Timeout: cfg.ContextTimeout})
	if cfg.UseRedisCache() {
		cache, err := statsclient.NewRedisCache(ctx, cfg.RedisURL, "ewm:")
		if err != nil {
			return err
		}
		defer cache.Close()
		recorder = statsclient.NewCachedRecorder(recorder, cache, cfg.ViewsCacheTTL, logger)
		logger.Info("view counts cached in redis", "ttl", cfg.ViewsCacheTTL)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	userService := services.NewUserService(userRepo, cfg.ContextTimeout)
	categoryService := services.NewCategoryService(categoryRepo, eventRepo, cfg.ContextTimeout)
	eventService := services.NewEventService(tx, eventRepo, categoryRepo, locationRepo, userRepo,
		recorder, emailService, logger, cfg.AppName, cfg.ContextTimeout)
	participationService := services.NewParticipationService(tx, requestRepo, eventRepo, userRepo,
		emailService, logger, cfg.ContextTimeout)
	commentService := services.NewCommentService(commentRepo, eventRepo, userRepo, cfg.ContextTimeout)
	compilationService := services.NewCompilationService(tx, compilationRepo, eventRepo, cfg.ContextTimeout)

	var verifier domain.TokenVerifier
	if cfg.AuthEnabled() {
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	} else {
		logger.Warn("JWT_SECRET is empty, the admin API is not protected")
	}

	router := httpdelivery.NewRouter(logger, httpdelivery.RouterConfig{
		Verifier:       verifier,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, httpdelivery.Controllers{
		Users:          controllers.NewUserController(logger, userService),
		Categories:     controllers.NewCategoryController(logger, categoryService),
		Events:         controllers.NewEventController(logger, eventService),
		Participations: controllers.NewParticipationController(logger, participationService),
		Comments:       controllers.NewCommentController(logger, commentService),
		Compilations:   controllers.NewCompilationController(logger, compilationService),
	})

	return serve(ctx, logger, ":"+cfg.Port, router)
}

// serve runs srv until ctx is canceled, then drains in-flight requests.
func serve(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
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
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
