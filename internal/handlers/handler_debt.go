package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles debts and their negotiation into installments.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers debt routes under a /companies/:company_id group.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:debt_id", h.getDebt)
		debts.POST("/:debt_id/negotiate", h.negotiateDebt)
		debts.GET("/:debt_id/preview", h.previewNegotiation)
		debts.DELETE("/:debt_id", h.deleteDebt)
	}
}

// createDebt godoc
// @Summary Register a debt
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Security BearerAuth
// @Router /companies/{company_id}/debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível cadastrar a dívida. Tente novamente.")
		return
	}

	logger.Info("Debt created", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Lists debts with the number of paid installments derived from linked entries.
// @Tags debts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /companies/{company_id}/debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), c.Param("company_id"), params, userID)
	if err != nil {
		respondError(c, err, "Não foi possível listar as dívidas. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts))
}

// getDebt godoc
// @Summary Get a debt
// @Tags debts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   debt_id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Security BearerAuth
// @Router /companies/{company_id}/debts/{debt_id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), c.Param("company_id"), c.Param("debt_id"), userID)
	if err != nil {
		respondError(c, err, "Não foi possível carregar a dívida. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// negotiateDebt godoc
// @Summary Negotiate a debt
// @Description Amortizes an active debt into monthly payable entries. A debt can be negotiated once.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   debt_id path string true "Debt ID"
// @Param   terms body dto.NegotiateDebtRequest true "Negotiation terms"
// @Success 201 {object} dto.NegotiateDebtResponse
// @Failure 400 {object} map[string]string "Invalid terms"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 409 {object} map[string]string "Debt already negotiated"
// @Failure 500 {object} map[string]string "Failed to negotiate debt"
// @Security BearerAuth
// @Router /companies/{company_id}/debts/{debt_id}/negotiate [post]
func (h *debtHandler) negotiateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debt_id")
	var req dto.NegotiateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	debt, entries, err := h.debtService.NegotiateDebt(c.Request.Context(), c.Param("company_id"), debtID, req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível negociar a dívida. Tente novamente.")
		return
	}

	logger.Info("Debt negotiated", slog.String("debt_id", debtID), slog.Int("installments", len(entries)))
	c.JSON(http.StatusCreated, dto.NegotiateDebtResponse{
		Debt:    dto.ToDebtResponse(debt),
		Entries: dto.ToEntryResponses(entries),
	})
}

// previewNegotiation godoc
// @Summary Preview a negotiation
// @Description Computes the amortization plan without saving anything.
// @Tags debts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   debt_id path string true "Debt ID"
// @Param   firstDueDate query string true "First installment due date (YYYY-MM-DD)"
// @Param   installments query int false "Number of installments, defaults to the debt's"
// @Param   interestRate query string false "Annual rate in percent, defaults to the debt's"
// @Success 200 {object} dto.DebtPreviewResponse
// @Failure 400 {object} map[string]string "Invalid terms"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to preview negotiation"
// @Security BearerAuth
// @Router /companies/{company_id}/debts/{debt_id}/preview [get]
func (h *debtHandler) previewNegotiation(c *gin.Context) {
	debtID := c.Param("debt_id")
	var params dto.PreviewDebtParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := params.ToNegotiateRequest()
	if err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plan, err := h.debtService.PreviewNegotiation(c.Request.Context(), c.Param("company_id"), debtID, req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível simular a negociação. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtPreviewResponse(debtID, plan))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Deletes the debt and every entry generated from it in one transaction.
// @Tags debts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   debt_id path string true "Debt ID"
// @Success 200 {object} dto.DeleteDebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to delete debt"
// @Security BearerAuth
// @Router /companies/{company_id}/debts/{debt_id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debt_id")
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	removed, err := h.debtService.DeleteDebt(c.Request.Context(), c.Param("company_id"), debtID, userID)
	if err != nil {
		respondError(c, err, "Não foi possível excluir a dívida. Tente novamente.")
		return
	}

	logger.Info("Debt deleted", slog.String("debt_id", debtID), slog.Int64("entries_removed", removed))
	c.JSON(http.StatusOK, dto.DeleteDebtResponse{DebtID: debtID, DeletedEntries: removed})
}
