package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// APIKeyValidator resolves a plaintext webhook key to the company that owns it.
type APIKeyValidator interface {
	ValidateAPIKey(ctx context.Context, plaintext string) (string, error)
}

// WebhookAuth authenticates machine callers by X-API-Key and scopes the request to the key's company.
func WebhookAuth(validator APIKeyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			logger.Warn("API key header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Cabeçalho X-API-Key obrigatório"})
			return
		}

		companyID, err := validator.ValidateAPIKey(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("API key rejected", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Chave de API inválida"})
				return
			}
			logger.Error("Failed to validate API key", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível validar a chave de API. Tente novamente."})
			return
		}

		ctx := context.WithValue(c.Request.Context(), companyIDKey, companyID)
		ctx = context.WithValue(ctx, authMethod, AuthMethodAPIKey)
		ctx = WithLogger(ctx, logger.With(slog.String("company_id", companyID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
