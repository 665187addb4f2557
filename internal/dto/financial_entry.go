package dto

import (
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Financial entry DTOs ---

// RecurrenceRequest is required when IsRecurring is set.
type RecurrenceRequest struct {
	Frequency domain.Frequency `json:"frequency" binding:"required,oneof=MONTHLY YEARLY"`
	EndDate   *Date            `json:"endDate"`
}

// CreateEntryRequest creates a one-off entry, or a whole series when IsRecurring is set.
type CreateEntryRequest struct {
	Kind        domain.EntryKind   `json:"kind" binding:"required,oneof=PAYABLE RECEIVABLE"`
	Description string             `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal    `json:"amount"` // > 0, checked by the service
	DueDate     *Date              `json:"dueDate" binding:"required"`
	Category    string             `json:"category" binding:"max=100"`
	TaxRate     *decimal.Decimal   `json:"taxRate"`
	IsRecurring bool               `json:"isRecurring"`
	Recurrence  *RecurrenceRequest `json:"recurrence"`
}

// UpdateEntryRequest carries a partial edit; only non-nil fields are applied.
type UpdateEntryRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *Date            `json:"dueDate"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// IsEmpty reports whether no field was provided.
func (r UpdateEntryRequest) IsEmpty() bool {
	return r.Description == nil && r.Amount == nil && r.DueDate == nil && r.Category == nil && r.TaxRate == nil
}

type RecurrenceResponse struct {
	Frequency domain.Frequency `json:"frequency"`
	EndDate   *Date            `json:"endDate,omitempty"`
}

type EntryResponse struct {
	EntryID           string              `json:"entryID"`
	CompanyID         string              `json:"companyID"`
	Kind              domain.EntryKind    `json:"kind"`
	Description       string              `json:"description"`
	Amount            decimal.Decimal     `json:"amount"`
	DueDate           Date                `json:"dueDate"`
	Status            domain.EntryStatus  `json:"status"`
	PaidAt            *time.Time          `json:"paidAt,omitempty"`
	Category          string              `json:"category,omitempty"`
	TaxRate           *decimal.Decimal    `json:"taxRate,omitempty"`
	IsRecurring       bool                `json:"isRecurring"`
	Recurrence        *RecurrenceResponse `json:"recurrence,omitempty"`
	SourceDebtID      *string             `json:"sourceDebtID,omitempty"`
	SeriesID          *string             `json:"seriesID,omitempty"`
	InstallmentNumber *int                `json:"installmentNumber,omitempty"`
	InstallmentTotal  *int                `json:"installmentTotal,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CreatedBy         string              `json:"createdBy"`
	LastUpdatedAt     time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy     string              `json:"lastUpdatedBy"`
}

// EntriesResponse wraps the records created or touched by a write.
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

type DeleteEntriesResponse struct {
	DeletedIDs []string `json:"deletedIDs"`
	Count      int      `json:"count"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Kind         string  `form:"kind" binding:"omitempty,oneof=PAYABLE RECEIVABLE"`
	Status       string  `form:"status" binding:"omitempty,oneof=PENDING PAID"`
	From         string  `form:"from" binding:"omitempty,date_ymd"`
	To           string  `form:"to" binding:"omitempty,date_ymd"`
	Category     string  `form:"category" binding:"omitempty,max=100"`
	SeriesID     string  `form:"seriesID" binding:"omitempty,uuid"`
	SourceDebtID string  `form:"sourceDebtID" binding:"omitempty,uuid"`
	Limit        int     `form:"limit,default=50"`
	NextToken    *string `form:"nextToken"`
}

// ToFilter converts the query parameters to a repository filter.
func (p ListEntriesParams) ToFilter() (domain.EntryFilter, error) {
	var f domain.EntryFilter
	if p.Kind != "" {
		k := domain.EntryKind(p.Kind)
		f.Kind = &k
	}
	if p.Status != "" {
		s := domain.EntryStatus(p.Status)
		f.Status = &s
	}
	from, err := ParseOptionalDate(p.From)
	if err != nil {
		return f, err
	}
	to, err := ParseOptionalDate(p.To)
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to
	if p.Category != "" {
		f.Category = &p.Category
	}
	if p.SeriesID != "" {
		f.SeriesID = &p.SeriesID
	}
	if p.SourceDebtID != "" {
		f.SourceDebtID = &p.SourceDebtID
	}
	return f, nil
}

type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

type SummaryParams struct {
	From string `form:"from" binding:"omitempty,date_ymd"`
	To   string `form:"to" binding:"omitempty,date_ymd"`
}

type SummaryResponse struct {
	From              *Date           `json:"from,omitempty"`
	To                *Date           `json:"to,omitempty"`
	PayablePending    decimal.Decimal `json:"payablePending"`
	PayablePaid       decimal.Decimal `json:"payablePaid"`
	ReceivablePending decimal.Decimal `json:"receivablePending"`
	ReceivablePaid    decimal.Decimal `json:"receivablePaid"`
	Balance           decimal.Decimal `json:"balance"`
	OverdueCount      int             `json:"overdueCount"`
}

func ToEntryResponse(e *domain.FinancialEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:           e.EntryID,
		CompanyID:         e.CompanyID,
		Kind:              e.Kind,
		Description:       e.Description,
		Amount:            e.Amount,
		DueDate:           NewDate(e.DueDate),
		Status:            e.Status,
		PaidAt:            e.PaidAt,
		Category:          e.Category,
		TaxRate:           e.TaxRate,
		IsRecurring:       e.IsRecurring,
		SourceDebtID:      e.SourceDebtID,
		SeriesID:          e.SeriesID,
		InstallmentNumber: e.InstallmentNumber,
		InstallmentTotal:  e.InstallmentTotal,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
		LastUpdatedAt:     e.LastUpdatedAt,
		LastUpdatedBy:     e.LastUpdatedBy,
	}
	if e.Recurrence != nil {
		resp.Recurrence = &RecurrenceResponse{
			Frequency: e.Recurrence.Frequency,
			EndDate:   NewDatePtr(e.Recurrence.EndDate),
		}
	}
	return resp
}

func ToEntryResponses(entries []domain.FinancialEntry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}

func ToEntriesResponse(entries []domain.FinancialEntry) EntriesResponse {
	return EntriesResponse{Entries: ToEntryResponses(entries), Count: len(entries)}
}

func ToSummaryResponse(s *domain.EntrySummary, from, to *time.Time) SummaryResponse {
	return SummaryResponse{
		From:              NewDatePtr(from),
		To:                NewDatePtr(to),
		PayablePending:    s.PayablePending,
		PayablePaid:       s.PayablePaid,
		ReceivablePending: s.ReceivablePending,
		ReceivablePaid:    s.ReceivablePaid,
		Balance:           s.Balance(),
		OverdueCount:      s.OverdueCount,
	}
}
