// Package schedule computes due dates for recurring entries and amortized
// installment plans, and resolves which entries of a series an edit touches.
package schedule

import (
	"errors"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultHorizonYears bounds a recurrence that has no end date.
const DefaultHorizonYears = 5

// MaxOccurrences caps a single generated series.
const MaxOccurrences = 600

var (
	ErrInvalidFrequency   = errors.New("invalid recurrence frequency")
	ErrTooManyOccurrences = errors.New("recurrence produces too many occurrences")
)

// Occurrence is one (amount, due date) pair of a series.
type Occurrence struct {
	Amount  decimal.Decimal
	DueDate time.Time
}

// AddMonths adds n calendar months to t, clamping the day to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func step(start time.Time, freq domain.Frequency, k int) time.Time {
	if freq == domain.Yearly {
		return AddMonths(start, 12*k)
	}
	return AddMonths(start, k)
}

// GenerateDueDates returns the due dates from start up to end inclusive. Each
// date is computed from start, never from the previous date. A nil end uses a
// horizon of horizonYears (DefaultHorizonYears when <= 0). When start is after
// end the result is the start date alone.
func GenerateDueDates(start time.Time, freq domain.Frequency, end *time.Time, horizonYears int) ([]time.Time, error) {
	if !freq.Valid() {
		return nil, ErrInvalidFrequency
	}
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}

	limit := AddMonths(start, 12*horizonYears)
	if end != nil {
		limit = *end
	}
	if start.After(limit) {
		return []time.Time{start}, nil
	}

	dates := make([]time.Time, 0, 16)
	for k := 0; ; k++ {
		d := step(start, freq, k)
		if d.After(limit) {
			break
		}
		if len(dates) == MaxOccurrences {
			return nil, ErrTooManyOccurrences
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// GenerateSeries pairs every generated due date with the same amount.
func GenerateSeries(amount decimal.Decimal, start time.Time, freq domain.Frequency, end *time.Time, horizonYears int) ([]Occurrence, error) {
	dates, err := GenerateDueDates(start, freq, end, horizonYears)
	if err != nil {
		return nil, err
	}
	out := make([]Occurrence, len(dates))
	for i, d := range dates {
		out[i] = Occurrence{Amount: amount, DueDate: d}
	}
	return out, nil
}
