package handlers_test

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
	"github.com/stretchr/testify/mock"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListCompanies(ctx context.Context, params dto.ListCompaniesParams, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListMembers(ctx context.Context, companyID, userID string) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}
func (m *MockCompanyService) AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, userID string) (*domain.CompanyMember, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMember), args.Error(1)
}
func (m *MockCompanyService) EnsureActiveCompany(ctx context.Context, companyID string) error {
	return m.Called(ctx, companyID).Error(0)
}
func (m *MockCompanyService) EnsureCompanyAccess(ctx context.Context, userID, companyID string, required domain.MemberRole) error {
	return m.Called(ctx, userID, companyID, required).Error(0)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock FinancialEntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntry(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, companyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockEntryService) GetSummary(ctx context.Context, companyID string, params dto.SummaryParams, userID string) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, companyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}
func (m *MockEntryService) CreateEntries(ctx context.Context, companyID string, req dto.CreateEntryRequest, userID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) UpdateEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, req dto.UpdateEntryRequest, userID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, entryID, scope, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) MarkEntryPaid(ctx context.Context, companyID, entryID, userID string) (*domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialEntry), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, companyID, entryID string, scope domain.UpdateScope, userID string) ([]string, error) {
	args := m.Called(ctx, companyID, entryID, scope, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.FinancialEntrySvcFacade = (*MockEntryService)(nil)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportEntries(ctx context.Context, companyID string, params dto.ListEntriesParams, userID string) ([]byte, error) {
	args := m.Called(ctx, companyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) GetDebt(ctx context.Context, companyID, debtID, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, companyID, debtID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}
func (m *MockDebtService) ListDebts(ctx context.Context, companyID string, params dto.ListDebtsParams, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, companyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}
func (m *MockDebtService) PreviewNegotiation(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) ([]schedule.Installment, error) {
	args := m.Called(ctx, companyID, debtID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.Installment), args.Error(1)
}
func (m *MockDebtService) CreateDebt(ctx context.Context, companyID string, req dto.CreateDebtRequest, userID string) (*domain.Debt, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}
func (m *MockDebtService) NegotiateDebt(ctx context.Context, companyID, debtID string, req dto.NegotiateDebtRequest, userID string) (*domain.Debt, []domain.FinancialEntry, error) {
	args := m.Called(ctx, companyID, debtID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Debt), args.Get(1).([]domain.FinancialEntry), args.Error(2)
}
func (m *MockDebtService) DeleteDebt(ctx context.Context, companyID, debtID, userID string) (int64, error) {
	args := m.Called(ctx, companyID, debtID, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ListContacts(ctx context.Context, companyID string, params dto.ListContactsParams, userID string) ([]domain.Contact, error) {
	args := m.Called(ctx, companyID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}
func (m *MockContactService) RegisterPurchase(ctx context.Context, companyID string, req dto.PurchaseWebhookRequest) (*domain.Contact, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Mock APIKeyService ---
type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) IssueAPIKey(ctx context.Context, companyID string, req dto.CreateAPIKeyRequest, userID string) (*domain.CompanyAPIKey, string, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.CompanyAPIKey), args.String(1), args.Error(2)
}
func (m *MockAPIKeyService) ListAPIKeys(ctx context.Context, companyID, userID string) ([]domain.CompanyAPIKey, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyAPIKey), args.Error(1)
}
func (m *MockAPIKeyService) RevokeAPIKey(ctx context.Context, companyID, keyID, userID string) error {
	return m.Called(ctx, companyID, keyID, userID).Error(0)
}
func (m *MockAPIKeyService) ValidateAPIKey(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

var _ portssvc.APIKeySvcFacade = (*MockAPIKeyService)(nil)
