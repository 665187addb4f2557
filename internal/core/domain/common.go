package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference, or "webhook" for intake writes
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Stamp sets both creation and update fields.
func (a *AuditFields) Stamp(now time.Time, userID string) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Touch sets only the update fields.
func (a *AuditFields) Touch(now time.Time, userID string) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MoneyPlaces is the number of decimal places amounts are stored with.
const MoneyPlaces = 2

// IsCents reports whether d fits in MoneyPlaces decimal places without rounding.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}
