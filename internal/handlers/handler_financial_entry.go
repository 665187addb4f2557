package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// entryHandler handles payable and receivable entries of a company.
type entryHandler struct {
	entryService  portssvc.FinancialEntrySvcFacade
	exportService portssvc.ExportSvc
}

func newEntryHandler(es portssvc.FinancialEntrySvcFacade, xs portssvc.ExportSvc) *entryHandler {
	return &entryHandler{entryService: es, exportService: xs}
}

// registerEntryRoutes registers entry routes under a /companies/:company_id group.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.FinancialEntrySvcFacade, exportService portssvc.ExportSvc) {
	h := newEntryHandler(entryService, exportService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntries)
		entries.GET("", h.listEntries)
		entries.GET("/summary", h.getSummary)
		entries.GET("/export", h.exportEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.PATCH("/:entry_id", h.updateEntry)
		entries.POST("/:entry_id/pay", h.markEntryPaid)
		entries.DELETE("/:entry_id", h.deleteEntry)
	}
}

func scopeFromQuery(c *gin.Context) (domain.UpdateScope, bool) {
	scope, err := domain.ParseUpdateScope(c.Query("scope"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid scope", slog.String("scope", c.Query("scope")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Escopo inválido; use single ou future"})
		return "", false
	}
	return scope, true
}

// createEntries godoc
// @Summary Create an entry
// @Description Creates a one-off entry, or every occurrence of a recurring one under a shared series id.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Company inactive"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create entries"
// @Security BearerAuth
// @Router /companies/{company_id}/entries [post]
func (h *entryHandler) createEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.entryService.CreateEntries(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível salvar o lançamento. Tente novamente.")
		return
	}

	logger.Info("Entries created", slog.String("company_id", companyID), slog.Int("count", len(entries)))
	c.JSON(http.StatusCreated, dto.ToEntriesResponse(entries))
}

// listEntries godoc
// @Summary List entries
// @Description Lists entries by due date with optional filters and cursor pagination.
// @Tags entries
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   kind query string false "PAYABLE or RECEIVABLE"
// @Param   status query string false "PENDING or PAID"
// @Param   from query string false "Due date from (YYYY-MM-DD)"
// @Param   to query string false "Due date to (YYYY-MM-DD)"
// @Param   category query string false "Category"
// @Param   seriesID query string false "Series ID"
// @Param   sourceDebtID query string false "Source debt ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid filters"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /companies/{company_id}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), c.Param("company_id"), params, userID)
	if err != nil {
		respondError(c, err, "Não foi possível listar os lançamentos. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSummary godoc
// @Summary Entry totals
// @Description Pending and paid totals per kind, balance and overdue count for a period.
// @Tags entries
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   from query string false "Due date from (YYYY-MM-DD)"
// @Param   to query string false "Due date to (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to summarize entries"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/summary [get]
func (h *entryHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.entryService.GetSummary(c.Request.Context(), c.Param("company_id"), params, userID)
	if err != nil {
		respondError(c, err, "Não foi possível calcular o resumo. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// exportEntries godoc
// @Summary Export entries
// @Description Downloads the filtered entry list as an XLSX workbook.
// @Tags entries
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   company_id path string true "Company ID"
// @Param   kind query string false "PAYABLE or RECEIVABLE"
// @Param   status query string false "PENDING or PAID"
// @Param   from query string false "Due date from (YYYY-MM-DD)"
// @Param   to query string false "Due date to (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filters or too many rows"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/export [get]
func (h *entryHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workbook, err := h.exportService.ExportEntries(c.Request.Context(), companyID, params, userID)
	if err != nil {
		respondError(c, err, "Não foi possível gerar a planilha. Tente novamente.")
		return
	}

	filename := fmt.Sprintf("lancamentos-%s.xlsx", time.Now().UTC().Format("20060102"))
	logger.Info("Entries exported", slog.String("company_id", companyID), slog.Int("bytes", len(workbook)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// getEntry godoc
// @Summary Get an entry
// @Tags entries
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), c.Param("company_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondError(c, err, "Não foi possível carregar o lançamento. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit an entry
// @Description Edits one entry, or it and every later entry of its series with scope=future.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry_id path string true "Entry ID"
// @Param   scope query string false "single (default) or future"
// @Param   entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [patch]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("company_id"), entryID, scope, req, userID)
	if err != nil {
		respondError(c, err, "Não foi possível atualizar o lançamento. Tente novamente.")
		return
	}

	logger.Info("Entries updated", slog.String("entry_id", entryID), slog.String("scope", string(scope)), slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToEntriesResponse(entries))
}

// markEntryPaid godoc
// @Summary Mark an entry as paid
// @Description Idempotent. Paying the last installment of a negotiated debt settles the debt.
// @Tags entries
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to mark entry as paid"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id}/pay [post]
func (h *entryHandler) markEntryPaid(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.MarkEntryPaid(c.Request.Context(), c.Param("company_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondError(c, err, "Não foi possível registrar o pagamento. Tente novamente.")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Deletes one entry, or it and every later entry of its series with scope=future.
// @Tags entries
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   entry_id path string true "Entry ID"
// @Param   scope query string false "single (default) or future"
// @Success 200 {object} dto.DeleteEntriesResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /companies/{company_id}/entries/{entry_id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entry_id")
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ids, err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("company_id"), entryID, scope, userID)
	if err != nil {
		respondError(c, err, "Não foi possível excluir o lançamento. Tente novamente.")
		return
	}

	logger.Info("Entries deleted", slog.String("entry_id", entryID), slog.String("scope", string(scope)), slog.Int("count", len(ids)))
	c.JSON(http.StatusOK, dto.DeleteEntriesResponse{DeletedIDs: ids, Count: len(ids)})
}
