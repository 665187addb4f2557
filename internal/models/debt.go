package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the row stored in debts. PaidInstallments is computed by the read queries.
type Debt struct {
	DebtID            string          `db:"debt_id"`
	CompanyID         string          `db:"company_id"`
	Description       string          `db:"description"`
	Creditor          string          `db:"creditor"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	InterestRate      decimal.Decimal `db:"interest_rate"`
	IsInstallment     bool            `db:"is_installment"`
	TotalInstallments int32           `db:"total_installments"`
	PaidInstallments  int32           `db:"paid_installments"`
	Status            string          `db:"status"`
	NegotiatedAt      *time.Time      `db:"negotiated_at"`
	AuditFields
}
