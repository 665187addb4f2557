package services

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/dto"
)

// CompanyReaderSvc defines read operations for companies
type CompanyReaderSvc interface {
	GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error)
	// ListCompanies returns only the companies userID belongs to.
	ListCompanies(ctx context.Context, params dto.ListCompaniesParams, userID string) ([]domain.Company, error)
	ListMembers(ctx context.Context, companyID, userID string) ([]domain.CompanyMember, error)
}

// CompanyWriterSvc defines write operations for companies
type CompanyWriterSvc interface {
	// CreateCompany makes the creator the company's first admin.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error)
	// AddMember grants or changes a user's role. Only admins may call it.
	AddMember(ctx context.Context, companyID string, req dto.AddMemberRequest, userID string) (*domain.CompanyMember, error)
}

// CompanyGuardSvc checks that a company may receive reads and writes.
type CompanyGuardSvc interface {
	// EnsureActiveCompany returns apperrors.ErrNotFound for unknown companies
	// and apperrors.ErrForbidden for deactivated ones. It is meant for callers
	// already bound to the company, such as an API key.
	EnsureActiveCompany(ctx context.Context, companyID string) error
	// EnsureCompanyAccess returns apperrors.ErrForbidden unless userID holds
	// at least required in an active company.
	EnsureCompanyAccess(ctx context.Context, userID, companyID string, required domain.MemberRole) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyGuardSvc
}
