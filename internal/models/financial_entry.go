package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialEntry is the row stored in financial_entries. The recurrence is
// flattened into two nullable columns.
type FinancialEntry struct {
	EntryID             string              `db:"entry_id"`
	CompanyID           string              `db:"company_id"`
	Kind                string              `db:"kind"`
	Description         string              `db:"description"`
	Amount              decimal.Decimal     `db:"amount"`
	DueDate             time.Time           `db:"due_date"`
	Status              string              `db:"status"`
	PaidAt              *time.Time          `db:"paid_at"`
	Category            *string             `db:"category"`
	TaxRate             decimal.NullDecimal `db:"tax_rate"`
	IsRecurring         bool                `db:"is_recurring"`
	RecurrenceFrequency *string             `db:"recurrence_frequency"`
	RecurrenceEndDate   *time.Time          `db:"recurrence_end_date"`
	SourceDebtID        *string             `db:"source_debt_id"`
	SeriesID            *string             `db:"series_id"`
	InstallmentNumber   *int32              `db:"installment_number"`
	InstallmentTotal    *int32              `db:"installment_total"`
	AuditFields
}

// EntrySummary is the aggregate row of the summary query.
type EntrySummary struct {
	PayablePending    decimal.Decimal `db:"payable_pending"`
	PayablePaid       decimal.Decimal `db:"payable_paid"`
	ReceivablePending decimal.Decimal `db:"receivable_pending"`
	ReceivablePaid    decimal.Decimal `db:"receivable_paid"`
	OverdueCount      int64           `db:"overdue_count"`
}
