package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/edu_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware tracks successful API calls, attributed to the user or, for webhooks, to the company.
func AnalyticsMiddleware(client *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		distinctID, ok := GetUserIDFromContext(c)
		if !ok {
			companyID, found := GetCompanyIDFromContext(c)
			if !found {
				return
			}
			distinctID = "company:" + companyID
		}

		// "/api/v1/companies/:company_id/entries" -> "api_v1_companies_:company_id_entries"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		if method, ok := GetAuthMethodFromContext(c); ok {
			props["auth_method"] = method
		}

		client.Track(distinctID, eventName, props)
	}
}
