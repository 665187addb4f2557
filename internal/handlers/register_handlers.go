package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/edu_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/SscSPs/edu_backoffice/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes. A nil limiter disables rate
// limiting for its group.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	webhookLimiter *limiter.Limiter,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	setupCORS(r, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, apiLimiter)
	setupWebhookRoutes(r, services, webhookLimiter)
	setupSwaggerRoutes(r, cfg)
	return nil
}

func setupCORS(r *gin.Engine, cfg *config.Config) {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.APIKeyHeader, "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// setupAPIV1Routes configures the JWT protected /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	if apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}

	registerCompanyRoutes(v1, services.Company)

	company := v1.Group("/companies/:company_id")
	registerEntryRoutes(company, services.Entry, services.Export)
	registerDebtRoutes(company, services.Debt)
	registerAPIKeyRoutes(company, services.APIKey)
	registerContactRoutes(company, services.Contact)
}

// setupWebhookRoutes configures routes called by the checkout platform.
// The limiter runs before key validation so bad keys are throttled too.
func setupWebhookRoutes(r *gin.Engine, services *portssvc.ServiceContainer, webhookLimiter *limiter.Limiter) {
	webhooks := r.Group("/api/v1/webhooks")
	if webhookLimiter != nil {
		webhooks.Use(middleware.RateLimit(webhookLimiter))
	}
	webhooks.Use(middleware.WebhookAuth(services.APIKey))
	registerWebhookRoutes(webhooks, services.Contact)
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterDBHealthRoute adds /health/db, which answers 503 while the database is unreachable.
func RegisterDBHealthRoute(r *gin.Engine, db Pinger) {
	r.GET("/health/db", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Database health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
			return
		}
		c.String(http.StatusOK, "OK")
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
