package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/core/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *dto.Date {
	v := dto.NewDate(day(y, m, d))
	return &v
}

func strPtr(s string) *string { return &s }

type FinancialEntryServiceTestSuite struct {
	suite.Suite
	entryRepo *MockEntryRepository
	debtRepo  *MockDebtRepository
	guard     *MockCompanyGuard
	service   portssvc.FinancialEntrySvcFacade
	ctx       context.Context
}

func (suite *FinancialEntryServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockEntryRepository)
	suite.debtRepo = new(MockDebtRepository)
	suite.guard = new(MockCompanyGuard)
	suite.guard.On("EnsureCompanyAccess", mock.Anything, mock.Anything, "c1", mock.Anything).Return(nil).Maybe()
	suite.service = services.NewFinancialEntryService(
		suite.entryRepo,
		suite.guard,
		services.WithDebtRepository(suite.debtRepo),
		services.WithEntryClock(func() time.Time { return fixedNow }),
	)
	suite.ctx = context.Background()
}

func (suite *FinancialEntryServiceTestSuite) series(seriesID string, n int) []domain.FinancialEntry {
	out := make([]domain.FinancialEntry, n)
	for i := range out {
		out[i] = domain.FinancialEntry{
			EntryID:     "e" + string(rune('0'+i)),
			CompanyID:   "c1",
			Kind:        domain.Payable,
			Description: "Aluguel",
			Amount:      decimal.NewFromInt(1000),
			DueDate:     schedule.AddMonths(day(2025, 1, 10), i),
			Status:      domain.EntryPending,
			IsRecurring: true,
			Recurrence:  &domain.Recurrence{Frequency: domain.Monthly},
			SeriesID:    strPtr(seriesID),
		}
	}
	return out
}

func (suite *FinancialEntryServiceTestSuite) TestCreateEntries_OneOff() {
	req := dto.CreateEntryRequest{
		Kind:        domain.Receivable,
		Description: "  Mensalidade  ",
		Amount:      decimal.RequireFromString("450.00"),
		DueDate:     datePtr(2025, 4, 5),
	}
	suite.entryRepo.On("SaveEntries", mock.Anything, mock.MatchedBy(func(es []domain.FinancialEntry) bool {
		return len(es) == 1 && es[0].SeriesID == nil && !es[0].IsRecurring
	})).Return(nil).Once()

	entries, err := suite.service.CreateEntries(suite.ctx, "c1", req, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("Mensalidade", entries[0].Description)
	suite.Equal(domain.EntryPending, entries[0].Status)
	suite.Equal(day(2025, 4, 5), entries[0].DueDate)
	suite.Equal("u1", entries[0].CreatedBy)
	suite.Equal(fixedNow, entries[0].CreatedAt)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *FinancialEntryServiceTestSuite) TestCreateEntries_RecurringSharesSeriesAndClamps() {
	req := dto.CreateEntryRequest{
		Kind:        domain.Payable,
		Description: "Aluguel",
		Amount:      decimal.NewFromInt(1500),
		DueDate:     datePtr(2025, 1, 31),
		IsRecurring: true,
		Recurrence:  &dto.RecurrenceRequest{Frequency: domain.Monthly, EndDate: datePtr(2025, 4, 30)},
	}
	suite.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()

	entries, err := suite.service.CreateEntries(suite.ctx, "c1", req, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 4)
	want := []time.Time{day(2025, 1, 31), day(2025, 2, 28), day(2025, 3, 31), day(2025, 4, 30)}
	seriesID := entries[0].SeriesID
	suite.Require().NotNil(seriesID)
	ids := map[string]bool{}
	for i, e := range entries {
		suite.Equal(want[i], e.DueDate)
		suite.Equal(*seriesID, *e.SeriesID)
		suite.True(e.IsRecurring)
		suite.True(e.Amount.Equal(decimal.NewFromInt(1500)))
		ids[e.EntryID] = true
	}
	suite.Len(ids, 4)
}

func (suite *FinancialEntryServiceTestSuite) TestCreateEntries_OpenEndedUsesHorizon() {
	req := dto.CreateEntryRequest{
		Kind:        domain.Payable,
		Description: "Software",
		Amount:      decimal.NewFromInt(99),
		DueDate:     datePtr(2025, 1, 10),
		IsRecurring: true,
		Recurrence:  &dto.RecurrenceRequest{Frequency: domain.Monthly},
	}
	suite.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()

	entries, err := suite.service.CreateEntries(suite.ctx, "c1", req, "u1")

	suite.Require().NoError(err)
	suite.Len(entries, 61)
	suite.Equal(day(2030, 1, 10), entries[60].DueDate)
}

func (suite *FinancialEntryServiceTestSuite) TestCreateEntries_Validation() {
	tests := []struct {
		name string
		req  dto.CreateEntryRequest
	}{
		{"zero amount", dto.CreateEntryRequest{Kind: domain.Payable, Description: "x", Amount: decimal.Zero, DueDate: datePtr(2025, 1, 1)}},
		{"negative amount", dto.CreateEntryRequest{Kind: domain.Payable, Description: "x", Amount: decimal.NewFromInt(-5), DueDate: datePtr(2025, 1, 1)}},
		{"sub-cent amount", dto.CreateEntryRequest{Kind: domain.Payable, Description: "x", Amount: decimal.RequireFromString("10.005"), DueDate: datePtr(2025, 1, 1)}},
		{"bad kind", dto.CreateEntryRequest{Kind: "OTHER", Description: "x", Amount: decimal.NewFromInt(5), DueDate: datePtr(2025, 1, 1)}},
		{"missing due date", dto.CreateEntryRequest{Kind: domain.Payable, Description: "x", Amount: decimal.NewFromInt(5)}},
		{"blank description", dto.CreateEntryRequest{Kind: domain.Payable, Description: "  ", Amount: decimal.NewFromInt(5), DueDate: datePtr(2025, 1, 1)}},
		{"recurring without frequency", dto.CreateEntryRequest{Kind: domain.Payable, Description: "x", Amount: decimal.NewFromInt(5), DueDate: datePtr(2025, 1, 1), IsRecurring: true}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateEntries(suite.ctx, "c1", tt.req, "u1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestCreateEntries_InactiveCompany() {
	suite.guard.On("EnsureCompanyAccess", mock.Anything, "u1", "c2", domain.RoleMember).Return(apperrors.NewForbiddenError("Empresa inativa")).Once()

	_, err := suite.service.CreateEntries(suite.ctx, "c2", dto.CreateEntryRequest{}, "u1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *FinancialEntryServiceTestSuite) TestRolesRequiredPerOperation() {
	guard := new(MockCompanyGuard)
	guard.On("EnsureCompanyAccess", mock.Anything, "viewer", "c1", domain.RoleReadOnly).Return(nil)
	guard.On("EnsureCompanyAccess", mock.Anything, "viewer", "c1", domain.RoleMember).
		Return(apperrors.NewForbiddenError("Permissão insuficiente para esta operação"))
	svc := services.NewFinancialEntryService(suite.entryRepo, guard)
	suite.entryRepo.On("SummarizeEntries", mock.Anything, "c1", (*time.Time)(nil), (*time.Time)(nil), mock.Anything).
		Return(&domain.EntrySummary{}, nil).Once()

	_, err := svc.GetSummary(suite.ctx, "c1", dto.SummaryParams{}, "viewer")
	suite.NoError(err)

	_, err = svc.MarkEntryPaid(suite.ctx, "c1", "e1", "viewer")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	_, err = svc.DeleteEntry(suite.ctx, "c1", "e1", domain.ScopeSingle, "viewer")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.entryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestGetEntry_OtherCompanyIsNotFound() {
	foreign := &domain.FinancialEntry{EntryID: "e1", CompanyID: "other"}
	suite.entryRepo.On("FindEntryByID", mock.Anything, "e1").Return(foreign, nil).Once()

	_, err := suite.service.GetEntry(suite.ctx, "c1", "e1", "u1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FinancialEntryServiceTestSuite) TestMarkEntryPaid_PendingBecomesPaid() {
	entry := suite.series("s1", 1)[0]
	suite.entryRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(&entry, nil).Once()
	suite.entryRepo.On("UpdateEntries", mock.Anything, mock.MatchedBy(func(es []domain.FinancialEntry) bool {
		return len(es) == 1 && es[0].Status == domain.EntryPaid
	})).Return(nil).Once()

	paid, err := suite.service.MarkEntryPaid(suite.ctx, "c1", entry.EntryID, "u2")

	suite.Require().NoError(err)
	suite.Equal(domain.EntryPaid, paid.Status)
	suite.Require().NotNil(paid.PaidAt)
	suite.Equal(fixedNow, *paid.PaidAt)
	suite.Equal("u2", paid.LastUpdatedBy)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *FinancialEntryServiceTestSuite) TestMarkEntryPaid_IsIdempotent() {
	originalPaidAt := day(2025, 2, 1)
	entry := suite.series("s1", 1)[0]
	entry.Status = domain.EntryPaid
	entry.PaidAt = &originalPaidAt
	suite.entryRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(&entry, nil).Once()

	paid, err := suite.service.MarkEntryPaid(suite.ctx, "c1", entry.EntryID, "u2")

	suite.Require().NoError(err)
	suite.Equal(originalPaidAt, *paid.PaidAt)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntries", mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestMarkEntryPaid_LastInstallmentSettlesDebt() {
	installments := suite.series("plan", 2)
	for i := range installments {
		installments[i].SourceDebtID = strPtr("d1")
	}
	installments[0].Status = domain.EntryPaid
	installments[0].PaidAt = &fixedNow
	target := installments[1]

	allPaid := make([]domain.FinancialEntry, 2)
	copy(allPaid, installments)
	allPaid[1].Status = domain.EntryPaid
	allPaid[1].PaidAt = &fixedNow

	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("UpdateEntries", mock.Anything, mock.Anything).Return(nil).Once()
	suite.entryRepo.On("FindEntriesBySourceDebtID", mock.Anything, "c1", "d1").Return(allPaid, nil).Once()
	suite.debtRepo.On("FindDebtByID", mock.Anything, "d1").Return(&domain.Debt{DebtID: "d1", CompanyID: "c1", Status: domain.DebtNegotiated}, nil).Once()
	suite.debtRepo.On("UpdateDebtStatus", mock.Anything, "d1", domain.DebtPaid, "u1", fixedNow).Return(nil).Once()

	_, err := suite.service.MarkEntryPaid(suite.ctx, "c1", target.EntryID, "u1")

	suite.Require().NoError(err)
	suite.debtRepo.AssertExpectations(suite.T())
}

func (suite *FinancialEntryServiceTestSuite) TestMarkEntryPaid_PendingInstallmentsKeepDebtOpen() {
	installments := suite.series("plan", 3)
	for i := range installments {
		installments[i].SourceDebtID = strPtr("d1")
	}
	target := installments[0]
	after := make([]domain.FinancialEntry, 3)
	copy(after, installments)
	after[0].Status = domain.EntryPaid
	after[0].PaidAt = &fixedNow

	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("UpdateEntries", mock.Anything, mock.Anything).Return(nil).Once()
	suite.entryRepo.On("FindEntriesBySourceDebtID", mock.Anything, "c1", "d1").Return(after, nil).Once()

	_, err := suite.service.MarkEntryPaid(suite.ctx, "c1", target.EntryID, "u1")

	suite.Require().NoError(err)
	suite.debtRepo.AssertNotCalled(suite.T(), "UpdateDebtStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestDeleteEntry_FutureScopeDeletesTargetAndLater() {
	series := suite.series("s1", 6)
	target := series[2]
	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("FindEntriesBySeriesID", mock.Anything, "c1", "s1").Return(series, nil).Once()
	suite.entryRepo.On("DeleteEntries", mock.Anything, "c1", []string{"e2", "e3", "e4", "e5"}).Return(int64(4), nil).Once()

	ids, err := suite.service.DeleteEntry(suite.ctx, "c1", target.EntryID, domain.ScopeFuture, "u1")

	suite.Require().NoError(err)
	suite.Equal([]string{"e2", "e3", "e4", "e5"}, ids)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *FinancialEntryServiceTestSuite) TestDeleteEntry_SingleScope() {
	series := suite.series("s1", 3)
	target := series[1]
	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("DeleteEntries", mock.Anything, "c1", []string{"e1"}).Return(int64(1), nil).Once()

	ids, err := suite.service.DeleteEntry(suite.ctx, "c1", target.EntryID, domain.ScopeSingle, "u1")

	suite.Require().NoError(err)
	suite.Equal([]string{"e1"}, ids)
	suite.entryRepo.AssertNotCalled(suite.T(), "FindEntriesBySeriesID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestUpdateEntry_FutureScopeSkipsPaidAmounts() {
	series := suite.series("s1", 4)
	series[2].Status = domain.EntryPaid
	series[2].PaidAt = &fixedNow
	target := series[1]
	newAmount := decimal.NewFromInt(1200)
	category := "Infraestrutura"

	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("FindEntriesBySeriesID", mock.Anything, "c1", "s1").Return(series, nil).Once()
	suite.entryRepo.On("UpdateEntries", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(suite.ctx, "c1", target.EntryID, domain.ScopeFuture,
		dto.UpdateEntryRequest{Amount: &newAmount, Category: &category}, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(updated, 3)
	suite.True(updated[0].Amount.Equal(newAmount))
	suite.True(updated[1].Amount.Equal(decimal.NewFromInt(1000)), "paid entry keeps its amount")
	suite.True(updated[2].Amount.Equal(newAmount))
	for _, e := range updated {
		suite.Equal(category, e.Category)
		suite.Equal("u1", e.LastUpdatedBy)
	}
}

func (suite *FinancialEntryServiceTestSuite) TestUpdateEntry_FutureDueDateShiftsPendingEntries() {
	series := suite.series("s1", 3)
	target := series[0]
	suite.entryRepo.On("FindEntryByID", mock.Anything, target.EntryID).Return(&target, nil).Once()
	suite.entryRepo.On("FindEntriesBySeriesID", mock.Anything, "c1", "s1").Return(series, nil).Once()
	suite.entryRepo.On("UpdateEntries", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateEntry(suite.ctx, "c1", target.EntryID, domain.ScopeFuture,
		dto.UpdateEntryRequest{DueDate: datePtr(2025, 1, 15)}, "u1")

	suite.Require().NoError(err)
	suite.Equal([]time.Time{day(2025, 1, 15), day(2025, 2, 15), day(2025, 3, 15)},
		[]time.Time{updated[0].DueDate, updated[1].DueDate, updated[2].DueDate})
}

func (suite *FinancialEntryServiceTestSuite) TestUpdateEntry_PaidSingleRejectsAmount() {
	entry := suite.series("s1", 1)[0]
	entry.Status = domain.EntryPaid
	entry.PaidAt = &fixedNow
	amount := decimal.NewFromInt(1)
	suite.entryRepo.On("FindEntryByID", mock.Anything, entry.EntryID).Return(&entry, nil).Once()

	_, err := suite.service.UpdateEntry(suite.ctx, "c1", entry.EntryID, domain.ScopeSingle, dto.UpdateEntryRequest{Amount: &amount}, "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinancialEntryServiceTestSuite) TestUpdateEntry_SubCentAmountRejected() {
	amount := decimal.RequireFromString("99.999")

	_, err := suite.service.UpdateEntry(suite.ctx, "c1", "e1", domain.ScopeFuture, dto.UpdateEntryRequest{Amount: &amount}, "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

func (suite *FinancialEntryServiceTestSuite) TestUpdateEntry_EmptyRequest() {
	_, err := suite.service.UpdateEntry(suite.ctx, "c1", "e1", domain.ScopeSingle, dto.UpdateEntryRequest{}, "u1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinancialEntryServiceTestSuite) TestListEntries_PassesFilterAndToken() {
	token := strPtr("tok")
	next := strPtr("next")
	suite.entryRepo.On("ListEntries", mock.Anything, "c1", mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.Kind != nil && *f.Kind == domain.Payable && f.From != nil && f.From.Equal(day(2025, 1, 1))
	}), 200, token).Return(suite.series("s1", 2), next, nil).Once()

	resp, err := suite.service.ListEntries(suite.ctx, "c1", dto.ListEntriesParams{Kind: "PAYABLE", From: "2025-01-01", Limit: 1000, NextToken: token}, "u1")

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 2)
	suite.Equal(next, resp.NextToken)
}

func (suite *FinancialEntryServiceTestSuite) TestListEntries_InvertedRange() {
	_, err := suite.service.ListEntries(suite.ctx, "c1", dto.ListEntriesParams{From: "2025-02-01", To: "2025-01-01"}, "u1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinancialEntryServiceTestSuite) TestGetSummary_UsesTodayForOverdue() {
	summary := &domain.EntrySummary{
		PayablePending:    decimal.NewFromInt(300),
		ReceivablePaid:    decimal.NewFromInt(1000),
		PayablePaid:       decimal.Zero,
		ReceivablePending: decimal.Zero,
		OverdueCount:      2,
	}
	suite.entryRepo.On("SummarizeEntries", mock.Anything, "c1", (*time.Time)(nil), (*time.Time)(nil), day(2025, 3, 15)).Return(summary, nil).Once()

	resp, err := suite.service.GetSummary(suite.ctx, "c1", dto.SummaryParams{}, "u1")

	suite.Require().NoError(err)
	suite.Equal("700", resp.Balance.String())
	suite.Equal(2, resp.OverdueCount)
}

func TestFinancialEntryService(t *testing.T) {
	suite.Run(t, new(FinancialEntryServiceTestSuite))
}
