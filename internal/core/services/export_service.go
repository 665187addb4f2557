package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet    = "Lançamentos"
	exportPageSize = 500
	// MaxExportRows caps a single workbook.
	MaxExportRows = 20000
)

var exportHeader = []any{
	"Vencimento", "Tipo", "Descrição", "Categoria", "Valor", "Status", "Pago em", "Parcela", "Série",
}

type exportService struct {
	BaseService
	entryRepo portsrepo.FinancialEntryReader
}

func NewExportService(entryRepo portsrepo.FinancialEntryReader, guard portssvc.CompanyGuardSvc) portssvc.ExportSvc {
	return &exportService{
		BaseService: BaseService{CompanyGuard: guard},
		entryRepo:   entryRepo,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) ([]byte, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	filter, err := params.ToFilter()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var entries []domain.FinancialEntry
	var token *string
	for {
		page, next, err := s.entryRepo.ListEntries(ctx, companyID, filter, exportPageSize, token)
		if err != nil {
			s.LogError(ctx, err, "Failed to load entries for export", slog.String("company_id", companyID))
			return nil, err
		}
		entries = append(entries, page...)
		if len(entries) > MaxExportRows {
			return nil, apperrors.NewValidationError(fmt.Sprintf("A exportação está limitada a %d lançamentos; refine os filtros", MaxExportRows))
		}
		if next == nil {
			break
		}
		token = next
	}

	out, err := renderEntriesWorkbook(entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to render export", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogInfo(ctx, "Entries exported", slog.String("company_id", companyID), slog.Int("rows", len(entries)))
	return out, nil
}

func renderEntriesWorkbook(entries []domain.FinancialEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(e)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "C", "C", 40); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(e domain.FinancialEntry) []any {
	paidAt := ""
	if e.PaidAt != nil {
		paidAt = e.PaidAt.Format(dto.DateLayout)
	}
	installment := ""
	if e.InstallmentNumber != nil && e.InstallmentTotal != nil {
		installment = fmt.Sprintf("%d/%d", *e.InstallmentNumber, *e.InstallmentTotal)
	}
	series := ""
	if e.SeriesID != nil {
		series = *e.SeriesID
	}
	return []any{
		e.DueDate.Format(dto.DateLayout),
		string(e.Kind),
		e.Description,
		e.Category,
		e.Amount.InexactFloat64(),
		string(e.Status),
		paidAt,
		installment,
		series,
	}
}
