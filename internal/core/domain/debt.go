package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus tracks a debt from registration to settlement.
type DebtStatus string

const (
	DebtActive     DebtStatus = "ACTIVE"     // registered, no installments generated yet
	DebtNegotiated DebtStatus = "NEGOTIATED" // installments generated as payables
	DebtPaid       DebtStatus = "PAID"       // every installment paid
)

// DefaultDebtCategory is the category given to generated installments.
const DefaultDebtCategory = "Dívidas"

// Debt is an obligation that can be split into amortized installments.
type Debt struct {
	DebtID            string          `json:"debtID"`
	CompanyID         string          `json:"companyID"`
	Description       string          `json:"description"`
	Creditor          string          `json:"creditor"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	InterestRate      decimal.Decimal `json:"interestRate"` // annual, percent
	IsInstallment     bool            `json:"isInstallment"`
	TotalInstallments int             `json:"totalInstallments"`
	PaidInstallments  int             `json:"paidInstallments"` // derived from linked entries
	Status            DebtStatus      `json:"status"`
	NegotiatedAt      *time.Time      `json:"negotiatedAt,omitempty"`
	AuditFields
}

var (
	errDebtAmount       = errors.New("total amount must be greater than zero")
	errDebtPrecision    = errors.New("total amount must have at most two decimal places")
	errDebtInstallments = errors.New("total installments must be at least 1")
	errDebtRate         = errors.New("interest rate must not be negative")
)

func (d *Debt) Validate() error {
	if !d.TotalAmount.IsPositive() {
		return errDebtAmount
	}
	if !IsCents(d.TotalAmount) {
		return errDebtPrecision
	}
	if d.TotalInstallments < 1 {
		return errDebtInstallments
	}
	if d.InterestRate.IsNegative() {
		return errDebtRate
	}
	return nil
}

// CanNegotiate reports whether installments may still be generated.
func (d *Debt) CanNegotiate() bool {
	return d.Status == DebtActive
}
