package services

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
)

type DebtReaderSvc interface {
	GetDebt(ctx context.Context, companyID, debtID, userID string) (*domain.Debt, error)
	ListDebts(ctx context.Context, companyID string, params dto.ListDebtsParams, userID string) ([]domain.Debt, error)

	// PreviewNegotiation computes the installment plan without persisting anything.
	PreviewNegotiation(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) ([]schedule.Installment, error)
}

type DebtWriterSvc interface {
	CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error)

	// NegotiateDebt amortizes an active debt into payable entries.
	NegotiateDebt(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) (*domain.Debt, []domain.FinancialEntry, error)

	// DeleteDebt removes the debt and its linked entries atomically.
	DeleteDebt(ctx context.Context, companyID, debtID, userID string) (int64, error)
}

type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
