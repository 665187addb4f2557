package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

// FinancialEntryReader defines methods for reading entries.
type FinancialEntryReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error)

	// ListEntries returns a page ordered by due date ascending and a token for the next page, if any.
	ListEntries(ctx context.Context, companyID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.FinancialEntry, *string, error)

	// FindEntriesBySeriesID returns every entry of a series ordered by due date.
	FindEntriesBySeriesID(ctx context.Context, companyID, seriesID string) ([]domain.FinancialEntry, error)

	FindEntriesBySourceDebtID(ctx context.Context, companyID, debtID string) ([]domain.FinancialEntry, error)

	// SummarizeEntries totals amounts by kind and status for due dates in [from, to].
	// Pending entries due before asOf count as overdue.
	SummarizeEntries(ctx context.Context, companyID string, from, to *time.Time, asOf time.Time) (*domain.EntrySummary, error)
}

// FinancialEntryWriter defines methods for writing entries. Every method is
// atomic: either all rows are written or none.
type FinancialEntryWriter interface {
	SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error
	UpdateEntries(ctx context.Context, entries []domain.FinancialEntry) error
	DeleteEntries(ctx context.Context, companyID string, entryIDs []string) (int64, error)
}

// FinancialEntryRepositoryFacade combines entry reads and writes.
type FinancialEntryRepositoryFacade interface {
	FinancialEntryReader
	FinancialEntryWriter
}
