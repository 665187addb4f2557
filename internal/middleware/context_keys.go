package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	companyIDKey = contextKey("companyID")
	authMethod   = contextKey("authMethod")
)

const (
	AuthMethodJWT    = "jwt"
	AuthMethodAPIKey = "api_key"
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userIDKey)
}

// GetCompanyIDFromContext retrieves the company resolved from a webhook API key.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), companyIDKey)
}

// GetAuthMethodFromContext reports how the request was authenticated.
func GetAuthMethodFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), authMethod)
}

func stringFromCtx(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
