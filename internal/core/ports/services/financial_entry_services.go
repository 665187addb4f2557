package services

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/dto"
)

// FinancialEntryReaderSvc defines read operations for entries
type FinancialEntryReaderSvc interface {
	GetEntry(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error)
	ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) (*dto.ListEntriesResponse, error)
	GetSummary(ctx context.Context, companyID string, params dto.SummaryParams, userID string) (*dto.SummaryResponse, error)
}

// FinancialEntryWriterSvc defines write operations for entries. Writes return
// the records as stored.
type FinancialEntryWriterSvc interface {
	// CreateEntries stores a one-off entry, or every occurrence of a recurring
	// entry under a fresh series id, in one transaction.
	CreateEntries(ctx context.Context, companyID string, req dto.CreateEntryRequest, userID string) ([]domain.FinancialEntry, error)

	UpdateEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, req dto.UpdateEntryRequest, userID string) ([]domain.FinancialEntry, error)

	// MarkEntryPaid is idempotent; a paid entry is returned unchanged.
	MarkEntryPaid(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error)

	DeleteEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, userID string) ([]string, error)
}

type FinancialEntrySvcFacade interface {
	FinancialEntryReaderSvc
	FinancialEntryWriterSvc
}

// ExportSvc renders entry listings as spreadsheets.
type ExportSvc interface {
	// ExportEntries returns an XLSX workbook of every entry matching params.
	ExportEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) ([]byte, error)
}
