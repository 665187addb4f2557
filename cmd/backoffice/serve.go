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

	"github.com/SscSPs/edu_backoffice/internal/core/services"
	"github.com/SscSPs/edu_backoffice/internal/handlers"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/SscSPs/edu_backoffice/internal/platform/config"
	"github.com/SscSPs/edu_backoffice/internal/platform/lock"
	"github.com/SscSPs/edu_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/edu_backoffice/internal/utils"
	"github.com/SscSPs/edu_backoffice/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().Bool("skip-migrations", false, "Start without applying pending migrations")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")
	logger := newLogger(debug)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if skipMigrations {
		logger.Warn("Skipping database migrations")
	} else if err := applyMigrations(logger, cfg, "up", 0); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)

	rdb, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer database.CloseRedisClient(rdb)
	if rdb == nil {
		logger.Warn("REDIS_URL not set, using in-process rate limits and locks")
	}

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit, "backoffice:api", rdb)
	if err != nil {
		return err
	}
	webhookLimiter, err := middleware.NewLimiter(cfg.WebhookRateLimit, "backoffice:webhook", rdb)
	if err != nil {
		return err
	}

	analytics := utils.NewAnalyticsClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, lock.NewLocker(rdb))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.AnalyticsMiddleware(analytics))
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, apiLimiter, webhookLimiter); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}
	if cfg.EnableDBCheck {
		handlers.RegisterDBHealthRoute(r, dbPool)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
