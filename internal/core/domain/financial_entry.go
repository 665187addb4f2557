package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes money going out from money coming in.
type EntryKind string

const (
	Payable    EntryKind = "PAYABLE"
	Receivable EntryKind = "RECEIVABLE"
)

func (k EntryKind) Valid() bool {
	return k == Payable || k == Receivable
}

// EntryStatus is the payment state of an entry.
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
	EntryPaid    EntryStatus = "PAID"
)

func (s EntryStatus) Valid() bool {
	return s == EntryPending || s == EntryPaid
}

// Frequency is the step between two occurrences of a recurring entry.
type Frequency string

const (
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

func (f Frequency) Valid() bool {
	return f == Monthly || f == Yearly
}

// UpdateScope selects which entries of a series an edit or delete touches.
type UpdateScope string

const (
	ScopeSingle UpdateScope = "single"
	ScopeFuture UpdateScope = "future"
)

// ParseUpdateScope maps the query value to a scope; empty means single.
func ParseUpdateScope(raw string) (UpdateScope, error) {
	switch UpdateScope(raw) {
	case "", ScopeSingle:
		return ScopeSingle, nil
	case ScopeFuture:
		return ScopeFuture, nil
	}
	return "", fmt.Errorf("invalid scope %q", raw)
}

// Recurrence describes how a recurring entry repeats.
type Recurrence struct {
	Frequency Frequency  `json:"frequency"`
	EndDate   *time.Time `json:"endDate,omitempty"` // nil means the default horizon
}

// FinancialEntry is a single payable or receivable with a due date.
type FinancialEntry struct {
	EntryID           string           `json:"entryID"`
	CompanyID         string           `json:"companyID"`
	Kind              EntryKind        `json:"kind"`
	Description       string           `json:"description"`
	Amount            decimal.Decimal  `json:"amount"`
	DueDate           time.Time        `json:"dueDate"`
	Status            EntryStatus      `json:"status"`
	PaidAt            *time.Time       `json:"paidAt,omitempty"`
	Category          string           `json:"category"`
	TaxRate           *decimal.Decimal `json:"taxRate,omitempty"`
	IsRecurring       bool             `json:"isRecurring"`
	Recurrence        *Recurrence      `json:"recurrence,omitempty"`
	SourceDebtID      *string          `json:"sourceDebtID,omitempty"` // set on debt installments
	SeriesID          *string          `json:"seriesID,omitempty"`     // shared by every entry of a series
	InstallmentNumber *int             `json:"installmentNumber,omitempty"`
	InstallmentTotal  *int             `json:"installmentTotal,omitempty"`
	AuditFields
}

var (
	errNonPositiveAmount = errors.New("amount must be greater than zero")
	errAmountPrecision   = errors.New("amount must have at most two decimal places")
	errInvalidKind       = errors.New("invalid entry kind")
	errInvalidStatus     = errors.New("invalid entry status")
	errMissingFrequency  = errors.New("recurring entry requires a frequency")
	errPaidWithoutDate   = errors.New("paid entry requires paid_at")
)

// Validate checks the invariants every persisted entry must satisfy.
func (e *FinancialEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return errNonPositiveAmount
	}
	if !IsCents(e.Amount) {
		return errAmountPrecision
	}
	if !e.Kind.Valid() {
		return errInvalidKind
	}
	if !e.Status.Valid() {
		return errInvalidStatus
	}
	if e.IsRecurring && (e.Recurrence == nil || !e.Recurrence.Frequency.Valid()) {
		return errMissingFrequency
	}
	if e.Status == EntryPaid && e.PaidAt == nil {
		return errPaidWithoutDate
	}
	return nil
}

func (e *FinancialEntry) IsPaid() bool {
	return e.Status == EntryPaid
}

// MarkPaid moves a pending entry to paid. It reports false when the entry was
// already paid, leaving the original paid_at untouched.
func (e *FinancialEntry) MarkPaid(now time.Time, userID string) bool {
	if e.IsPaid() {
		return false
	}
	paidAt := now
	e.Status = EntryPaid
	e.PaidAt = &paidAt
	e.Touch(now, userID)
	return true
}

// InSeries reports whether the entry belongs to the given series.
func (e *FinancialEntry) InSeries(seriesID string) bool {
	return e.SeriesID != nil && *e.SeriesID == seriesID
}

// EntryFilter narrows entry listings. Nil fields are ignored.
type EntryFilter struct {
	Kind         *EntryKind
	Status       *EntryStatus
	From         *time.Time
	To           *time.Time
	Category     *string
	SeriesID     *string
	SourceDebtID *string
}

// EntrySummary aggregates entry amounts for a period.
type EntrySummary struct {
	PayablePending    decimal.Decimal `json:"payablePending"`
	PayablePaid       decimal.Decimal `json:"payablePaid"`
	ReceivablePending decimal.Decimal `json:"receivablePending"`
	ReceivablePaid    decimal.Decimal `json:"receivablePaid"`
	OverdueCount      int             `json:"overdueCount"`
}

// Balance is receivables minus payables over both statuses.
func (s EntrySummary) Balance() decimal.Decimal {
	in := s.ReceivablePending.Add(s.ReceivablePaid)
	out := s.PayablePending.Add(s.PayablePaid)
	return in.Sub(out)
}
