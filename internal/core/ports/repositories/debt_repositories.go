package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

type DebtReader interface {
	// FindDebtByID returns the debt with PaidInstallments derived from its entries.
	FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, companyID string, limit, offset int) ([]domain.Debt, error)
}

type DebtWriter interface {
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// SaveNegotiation marks an active debt as negotiated and inserts its
	// installments in one transaction. It returns apperrors.ErrConflict when
	// the debt is no longer active.
	SaveNegotiation(ctx context.Context, debt domain.Debt, installments []domain.FinancialEntry) error

	UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, userID string, at time.Time) error

	// DeleteDebtCascade removes the debt and every entry linked to it in one
	// transaction, returning the number of entries removed.
	DeleteDebtCascade(ctx context.Context, companyID, debtID string) (int64, error)
}

// DebtRepositoryFacade combines debt reads and writes.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
