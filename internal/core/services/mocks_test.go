package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Company ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMember), args.Error(1)
}

func (m *MockCompanyRepository) ListMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, creator domain.CompanyMember) error {
	return m.Called(ctx, company, creator).Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) SaveMember(ctx context.Context, member domain.CompanyMember) error {
	return m.Called(ctx, member).Error(0)
}

// MockCompanyGuard stands in for the company service in other services' tests.
type MockCompanyGuard struct {
	mock.Mock
}

func (m *MockCompanyGuard) EnsureActiveCompany(ctx context.Context, companyID string) error {
	return m.Called(ctx, companyID).Error(0)
}

func (m *MockCompanyGuard) EnsureCompanyAccess(ctx context.Context, userID, companyID string, required domain.MemberRole) error {
	return m.Called(ctx, userID, companyID, required).Error(0)
}

// --- Entries ---

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.FinancialEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, companyID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.FinancialEntry, *string, error) {
	args := m.Called(ctx, companyID, filter, limit, nextToken)
	var entries []domain.FinancialEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.FinancialEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockEntryRepository) FindEntriesBySeriesID(ctx context.Context, companyID, seriesID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockEntryRepository) FindEntriesBySourceDebtID(ctx context.Context, companyID, debtID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockEntryRepository) SummarizeEntries(ctx context.Context, companyID string, from, to *time.Time, asOf time.Time) (*domain.EntrySummary, error) {
	args := m.Called(ctx, companyID, from, to, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntrySummary), args.Error(1)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockEntryRepository) UpdateEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockEntryRepository) DeleteEntries(ctx context.Context, companyID string, entryIDs []string) (int64, error) {
	args := m.Called(ctx, companyID, entryIDs)
	return args.Get(0).(int64), args.Error(1)
}

// --- Debts ---

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, companyID string, limit, offset int) ([]domain.Debt, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	return m.Called(ctx, debt).Error(0)
}

func (m *MockDebtRepository) SaveNegotiation(ctx context.Context, debt domain.Debt, installments []domain.FinancialEntry) error {
	return m.Called(ctx, debt, installments).Error(0)
}

func (m *MockDebtRepository) UpdateDebtStatus(ctx context.Context, debtID string, status domain.DebtStatus, userID string, at time.Time) error {
	return m.Called(ctx, debtID, status, userID, at).Error(0)
}

func (m *MockDebtRepository) DeleteDebtCascade(ctx context.Context, companyID, debtID string) (int64, error) {
	args := m.Called(ctx, companyID, debtID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Contacts ---

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ListContacts(ctx context.Context, companyID string, limit, offset int) ([]domain.Contact, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) UpsertContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

// --- API keys ---

type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) SaveAPIKey(ctx context.Context, key domain.CompanyAPIKey) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockAPIKeyRepository) FindActiveAPIKeysByPrefix(ctx context.Context, prefix string) ([]domain.CompanyAPIKey, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyAPIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) ListAPIKeys(ctx context.Context, companyID string) ([]domain.CompanyAPIKey, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyAPIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) RevokeAPIKey(ctx context.Context, companyID, keyID string, at time.Time) error {
	return m.Called(ctx, companyID, keyID, at).Error(0)
}

func (m *MockAPIKeyRepository) TouchAPIKey(ctx context.Context, keyID string, at time.Time) error {
	return m.Called(ctx, keyID, at).Error(0)
}
