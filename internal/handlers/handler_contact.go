package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)
	rg.GET("/contacts", h.listContacts)
}

// registerWebhookRoutes registers routes authenticated by a company API key.
func registerWebhookRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)
	rg.POST("/purchases", h.receivePurchase)
}

// listContacts godoc
// @Summary List contacts
// @Tags contacts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListContactsResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list contacts"
// @Security BearerAuth
// @Router /companies/{company_id}/contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	var params dto.ListContactsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), c.Param("company_id"), params, userID)
	if err != nil {
		respondError(c, err, "Não foi possível listar os contatos. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContactsResponse(contacts))
}

// receivePurchase godoc
// @Summary Purchase webhook
// @Description Registers the buyer as a contact of the key's company and grants student access.
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   purchase body dto.PurchaseWebhookRequest true "Purchase"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Invalid API key"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to register purchase"
// @Security ApiKeyAuth
// @Router /webhooks/purchases [post]
func (h *contactHandler) receivePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		logger.Error("Company ID not found in webhook context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Chave de API inválida"})
		return
	}
	var req dto.PurchaseWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	contact, err := h.contactService.RegisterPurchase(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Não foi possível registrar a compra. Tente novamente.")
		return
	}

	logger.Info("Purchase registered", slog.String("company_id", companyID), slog.String("contact_id", contact.ContactID))
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}
