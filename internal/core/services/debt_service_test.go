package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/core/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/platform/lock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DebtServiceTestSuite struct {
	suite.Suite
	debtRepo *MockDebtRepository
	guard    *MockCompanyGuard
	locker   *lock.LocalLocker
	service  portssvc.DebtSvcFacade
	ctx      context.Context
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.debtRepo = new(MockDebtRepository)
	suite.guard = new(MockCompanyGuard)
	suite.guard.On("EnsureCompanyAccess", mock.Anything, "u1", "c1", mock.Anything).Return(nil).Maybe()
	suite.locker = lock.NewLocalLocker()
	suite.service = services.NewDebtService(
		suite.debtRepo,
		suite.guard,
		services.WithLocker(suite.locker),
		services.WithDebtClock(func() time.Time { return fixedNow }),
	)
	suite.ctx = context.Background()
}

func activeDebt() *domain.Debt {
	return &domain.Debt{
		DebtID:            "d1",
		CompanyID:         "c1",
		Description:       "Empréstimo",
		Creditor:          "Banco",
		TotalAmount:       decimal.NewFromInt(1200),
		InterestRate:      decimal.NewFromInt(12),
		IsInstallment:     true,
		TotalInstallments: 2,
		Status:            domain.DebtActive,
	}
}

func (suite *DebtServiceTestSuite) TestCreateDebt_SingleInstallmentDefault() {
	req := dto.CreateDebtRequest{
		Description: "Fornecedor",
		Creditor:    "ACME",
		TotalAmount: decimal.NewFromInt(500),
	}
	suite.debtRepo.On("SaveDebt", mock.Anything, mock.MatchedBy(func(d domain.Debt) bool {
		return d.TotalInstallments == 1 && d.Status == domain.DebtActive && d.CompanyID == "c1"
	})).Return(nil).Once()

	debt, err := suite.service.CreateDebt(suite.ctx, "c1", req, "u1")

	suite.Require().NoError(err)
	suite.Equal(1, debt.TotalInstallments)
	suite.debtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Validation() {
	tests := []struct {
		name string
		req  dto.CreateDebtRequest
	}{
		{"zero total", dto.CreateDebtRequest{Description: "x", Creditor: "y", TotalAmount: decimal.Zero}},
		{"negative rate", dto.CreateDebtRequest{Description: "x", Creditor: "y", TotalAmount: decimal.NewFromInt(10), InterestRate: decimal.NewFromInt(-1)}},
		{"installments missing", dto.CreateDebtRequest{Description: "x", Creditor: "y", TotalAmount: decimal.NewFromInt(10), IsInstallment: true}},
		{"sub-cent total", dto.CreateDebtRequest{Description: "x", Creditor: "y", TotalAmount: decimal.RequireFromString("10.005")}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateDebt(suite.ctx, "c1", tt.req, "u1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.debtRepo.AssertNotCalled(suite.T(), "SaveDebt", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_GeneratesAmortizedPayables() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("SaveNegotiation", mock.Anything,
		mock.MatchedBy(func(d domain.Debt) bool { return d.Status == domain.DebtNegotiated && d.NegotiatedAt != nil }),
		mock.MatchedBy(func(es []domain.FinancialEntry) bool { return len(es) == 2 }),
	).Return(nil).Once()

	debt, entries, err := suite.service.NegotiateDebt(suite.ctx, "c1", "d1",
		dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.Require().NoError(err)
	suite.Equal(domain.DebtNegotiated, debt.Status)
	suite.Equal(fixedNow, *debt.NegotiatedAt)
	suite.Require().Len(entries, 2)

	suite.Equal("612.00", entries[0].Amount.StringFixed(2))
	suite.Equal("606.00", entries[1].Amount.StringFixed(2))
	suite.Equal(day(2025, 5, 10), entries[0].DueDate)
	suite.Equal(day(2025, 6, 10), entries[1].DueDate)
	suite.Equal("Empréstimo (Banco) - Parcela 1/2", entries[0].Description)
	suite.Equal("Empréstimo (Banco) - Parcela 2/2", entries[1].Description)
	for i, e := range entries {
		suite.Equal(domain.Payable, e.Kind)
		suite.Equal(domain.EntryPending, e.Status)
		suite.Equal(domain.DefaultDebtCategory, e.Category)
		suite.Equal("d1", *e.SourceDebtID)
		suite.Equal(*entries[0].SeriesID, *e.SeriesID)
		suite.Equal(i+1, *e.InstallmentNumber)
		suite.Equal(2, *e.InstallmentTotal)
	}
	suite.debtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_OverridesTerms() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("SaveNegotiation", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	n := 12
	zero := decimal.Zero
	debt, entries, err := suite.service.NegotiateDebt(suite.ctx, "c1", "d1",
		dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 1, 31), Installments: &n, InterestRate: &zero, Category: "Bancos"}, "u1")

	suite.Require().NoError(err)
	suite.Equal(12, debt.TotalInstallments)
	suite.True(debt.InterestRate.IsZero())
	suite.Require().Len(entries, 12)
	for _, e := range entries {
		suite.Equal("100.00", e.Amount.StringFixed(2))
		suite.Equal("Bancos", e.Category)
	}
	suite.Equal(day(2025, 2, 28), entries[1].DueDate)
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_AlreadyNegotiated() {
	negotiated := activeDebt()
	negotiated.Status = domain.DebtNegotiated
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(negotiated, nil).Once()

	_, _, err := suite.service.NegotiateDebt(suite.ctx, "c1", "d1", dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.debtRepo.AssertNotCalled(suite.T(), "SaveNegotiation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_ConcurrentNegotiationIsConflict() {
	held, err := suite.locker.Obtain(suite.ctx, "debt-negotiation:d1", time.Minute)
	suite.Require().NoError(err)
	defer func() { _ = held.Release(suite.ctx) }()

	_, _, err = suite.service.NegotiateDebt(suite.ctx, "c1", "d1", dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.debtRepo.AssertNotCalled(suite.T(), "FindDebtByID", mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_LostRaceSurfacesConflict() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("SaveNegotiation", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewConflictError("Esta dívida já foi negociada")).Once()

	_, _, err := suite.service.NegotiateDebt(suite.ctx, "c1", "d1", dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

// releaseRecorder wraps a locker and records the ctx error seen by Release.
type releaseRecorder struct {
	lock.Locker
	releaseErr chan error
}

func (r *releaseRecorder) Obtain(ctx context.Context, key string, ttl time.Duration) (lock.Lock, error) {
	lk, err := r.Locker.Obtain(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	return &recordedLock{Lock: lk, releaseErr: r.releaseErr}, nil
}

type recordedLock struct {
	lock.Lock
	releaseErr chan error
}

func (l *recordedLock) Release(ctx context.Context) error {
	l.releaseErr <- ctx.Err()
	return l.Lock.Release(ctx)
}

func (suite *DebtServiceTestSuite) TestNegotiateDebt_ReleasesLockAfterCancel() {
	recorder := &releaseRecorder{Locker: suite.locker, releaseErr: make(chan error, 1)}
	svc := services.NewDebtService(suite.debtRepo, suite.guard, services.WithLocker(recorder))
	ctx, cancel := context.WithCancel(suite.ctx)
	defer cancel()

	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("SaveNegotiation", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(context.Canceled).Once()

	_, _, err := svc.NegotiateDebt(ctx, "c1", "d1", dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.ErrorIs(err, context.Canceled)
	suite.NoError(<-recorder.releaseErr)
	again, err := suite.locker.Obtain(suite.ctx, "debt-negotiation:d1", time.Minute)
	suite.Require().NoError(err)
	suite.NoError(again.Release(suite.ctx))
}

func (suite *DebtServiceTestSuite) TestPreviewNegotiation_PersistsNothing() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()

	plan, err := suite.service.PreviewNegotiation(suite.ctx, "c1", "d1", dto.NegotiateDebtRequest{FirstDueDate: datePtr(2025, 5, 10)}, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(plan, 2)
	suite.Equal("12.00", plan[0].Interest.StringFixed(2))
	suite.Equal("6.00", plan[1].Interest.StringFixed(2))
	suite.debtRepo.AssertNotCalled(suite.T(), "SaveNegotiation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DebtServiceTestSuite) TestPreviewNegotiation_RequiresFirstDueDate() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()

	_, err := suite.service.PreviewNegotiation(suite.ctx, "c1", "d1", dto.NegotiateDebtRequest{}, "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DebtServiceTestSuite) TestDeleteDebt_CascadesInOneCall() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("DeleteDebtCascade", mock.Anything, "c1", "d1").Return(int64(2), nil).Once()

	removed, err := suite.service.DeleteDebt(suite.ctx, "c1", "d1", "u1")

	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)
	suite.debtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestDeleteDebt_FailureLeavesNothingPartial() {
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(activeDebt(), nil).Once()
	suite.debtRepo.On("DeleteDebtCascade", mock.Anything, "c1", "d1").Return(int64(0), errors.New("tx aborted")).Once()

	removed, err := suite.service.DeleteDebt(suite.ctx, "c1", "d1", "u1")

	suite.Error(err)
	suite.Zero(removed)
}

func (suite *DebtServiceTestSuite) TestDeleteDebt_ReadOnlyIsForbidden() {
	guard := new(MockCompanyGuard)
	guard.On("EnsureCompanyAccess", mock.Anything, "viewer", "c1", domain.RoleMember).
		Return(apperrors.NewForbiddenError("Permissão insuficiente para esta operação")).Once()
	svc := services.NewDebtService(suite.debtRepo, guard)

	_, err := svc.DeleteDebt(suite.ctx, "c1", "d1", "viewer")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.debtRepo.AssertNotCalled(suite.T(), "DeleteDebtCascade", mock.Anything, mock.Anything, mock.Anything)
	guard.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestGetDebt_OtherCompanyIsNotFound() {
	foreign := activeDebt()
	foreign.CompanyID = "other"
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(foreign, nil).Once()

	_, err := suite.service.GetDebt(suite.ctx, "c1", "d1", "u1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDebtService(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
