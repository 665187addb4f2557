package schedule

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// amountPlaces is the precision installment amounts are rounded to.
const amountPlaces = 2

var (
	ErrInvalidInstallments = errors.New("installment count must be at least 1")
	ErrInvalidPrincipal    = errors.New("total amount must be greater than zero")
	ErrNegativeRate        = errors.New("interest rate must not be negative")
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Installment is one row of an amortization plan.
type Installment struct {
	Number    int             `json:"number"` // 1-based
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"dueDate"`
}

// Amortize splits total into n principal shares rounded to cents; the last
// share absorbs the rounding remainder so the shares add up to total. Each
// installment adds simple monthly interest (annualRate/100/12) on the balance
// remaining before it. The first installment is due on firstDue, each next one
// a month later (clamped to month end). Amounts are rounded half away from zero
// to two places.
func Amortize(total, annualRate decimal.Decimal, n int, firstDue time.Time) ([]Installment, error) {
	if n <= 0 {
		return nil, ErrInvalidInstallments
	}
	if !total.IsPositive() {
		return nil, ErrInvalidPrincipal
	}
	if annualRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	share := total.Div(decimal.NewFromInt(int64(n))).Round(amountPlaces)
	last := total.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))
	monthlyRate := decimal.Zero
	if annualRate.IsPositive() {
		monthlyRate = annualRate.Div(hundred).Div(twelve)
	}

	plan := make([]Installment, n)
	for i := 0; i < n; i++ {
		principal := share
		if i == n-1 {
			principal = last
		}
		remaining := total.Sub(share.Mul(decimal.NewFromInt(int64(i))))
		interest := remaining.Mul(monthlyRate).Round(amountPlaces)
		plan[i] = Installment{
			Number:    i + 1,
			Principal: principal,
			Interest:  interest,
			Amount:    principal.Add(interest),
			DueDate:   AddMonths(firstDue, i),
		}
	}
	return plan, nil
}
