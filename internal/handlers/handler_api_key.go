package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type apiKeyHandler struct {
	apiKeyService portssvc.APIKeyManagerSvc
}

func newAPIKeyHandler(ks portssvc.APIKeyManagerSvc) *apiKeyHandler {
	return &apiKeyHandler{apiKeyService: ks}
}

// registerAPIKeyRoutes registers webhook key management under a /companies/:company_id group.
func registerAPIKeyRoutes(rg *gin.RouterGroup, apiKeyService portssvc.APIKeyManagerSvc) {
	h := newAPIKeyHandler(apiKeyService)

	keys := rg.Group("/api-keys")
	{
		keys.POST("", h.issueAPIKey)
		keys.GET("", h.listAPIKeys)
		keys.DELETE("/:key_id", h.revokeAPIKey)
	}
}

// issueAPIKey godoc
// @Summary Issue a webhook API key
// @Description The plaintext key is returned only in this response.
// @Tags api-keys
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   key body dto.CreateAPIKeyRequest true "Key name"
// @Success 201 {object} dto.CreateAPIKeyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to issue key"
// @Security BearerAuth
// @Router /companies/{company_id}/api-keys [post]
func (h *apiKeyHandler) issueAPIKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	key, plaintext, err := h.apiKeyService.IssueAPIKey(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível gerar a chave de API. Tente novamente.")
		return
	}

	logger.Info("API key issued", slog.String("key_id", key.KeyID), slog.String("key_prefix", key.KeyPrefix))
	c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{APIKeyResponse: dto.ToAPIKeyResponse(key), Key: plaintext})
}

// listAPIKeys godoc
// @Summary List webhook API keys
// @Tags api-keys
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.ListAPIKeysResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list keys"
// @Security BearerAuth
// @Router /companies/{company_id}/api-keys [get]
func (h *apiKeyHandler) listAPIKeys(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	keys, err := h.apiKeyService.ListAPIKeys(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondError(c, err, "Não foi possível listar as chaves de API. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAPIKeysResponse(keys))
}

// revokeAPIKey godoc
// @Summary Revoke a webhook API key
// @Tags api-keys
// @Param   company_id path string true "Company ID"
// @Param   key_id path string true "Key ID"
// @Success 204
// @Failure 404 {object} map[string]string "Key not found"
// @Failure 500 {object} map[string]string "Failed to revoke key"
// @Security BearerAuth
// @Router /companies/{company_id}/api-keys/{key_id} [delete]
func (h *apiKeyHandler) revokeAPIKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	keyID := c.Param("key_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.apiKeyService.RevokeAPIKey(c.Request.Context(), c.Param("company_id"), keyID, userID); err != nil {
		respondError(c, err, "Não foi possível revogar a chave de API. Tente novamente.")
		return
	}

	logger.Info("API key revoked", slog.String("key_id", keyID))
	c.Status(http.StatusNoContent)
}
