package mapping

import (
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFinancialEntry converts a domain FinancialEntry to a model FinancialEntry
func ToModelFinancialEntry(d domain.FinancialEntry) models.FinancialEntry {
	m := models.FinancialEntry{
		EntryID:           d.EntryID,
		CompanyID:         d.CompanyID,
		Kind:              string(d.Kind),
		Description:       d.Description,
		Amount:            d.Amount,
		DueDate:           domain.DateOnly(d.DueDate),
		Status:            string(d.Status),
		PaidAt:            d.PaidAt,
		Category:          optionalString(d.Category),
		IsRecurring:       d.IsRecurring,
		SourceDebtID:      d.SourceDebtID,
		SeriesID:          d.SeriesID,
		InstallmentNumber: toInt32Ptr(d.InstallmentNumber),
		InstallmentTotal:  toInt32Ptr(d.InstallmentTotal),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.TaxRate != nil {
		m.TaxRate = decimal.NewNullDecimal(*d.TaxRate)
	}
	if d.Recurrence != nil {
		freq := string(d.Recurrence.Frequency)
		m.RecurrenceFrequency = &freq
		m.RecurrenceEndDate = d.Recurrence.EndDate
	}
	return m
}

// ToDomainFinancialEntry converts a model FinancialEntry to a domain FinancialEntry
func ToDomainFinancialEntry(m models.FinancialEntry) domain.FinancialEntry {
	d := domain.FinancialEntry{
		EntryID:           m.EntryID,
		CompanyID:         m.CompanyID,
		Kind:              domain.EntryKind(m.Kind),
		Description:       m.Description,
		Amount:            m.Amount,
		DueDate:           domain.DateOnly(m.DueDate),
		Status:            domain.EntryStatus(m.Status),
		PaidAt:            m.PaidAt,
		Category:          derefString(m.Category),
		IsRecurring:       m.IsRecurring,
		SourceDebtID:      m.SourceDebtID,
		SeriesID:          m.SeriesID,
		InstallmentNumber: toIntPtr(m.InstallmentNumber),
		InstallmentTotal:  toIntPtr(m.InstallmentTotal),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.TaxRate.Valid {
		rate := m.TaxRate.Decimal
		d.TaxRate = &rate
	}
	if m.RecurrenceFrequency != nil {
		d.Recurrence = &domain.Recurrence{
			Frequency: domain.Frequency(*m.RecurrenceFrequency),
			EndDate:   m.RecurrenceEndDate,
		}
	}
	return d
}

func ToDomainFinancialEntrySlice(ms []models.FinancialEntry) []domain.FinancialEntry {
	ds := make([]domain.FinancialEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialEntry(m)
	}
	return ds
}

func ToDomainEntrySummary(m models.EntrySummary) domain.EntrySummary {
	return domain.EntrySummary{
		PayablePending:    m.PayablePending,
		PayablePaid:       m.PayablePaid,
		ReceivablePending: m.ReceivablePending,
		ReceivablePaid:    m.ReceivablePaid,
		OverdueCount:      int(m.OverdueCount),
	}
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
