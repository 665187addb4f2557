package repositories

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

type CompanyReader interface {
	// FindCompanyByID returns apperrors.ErrNotFound when no row matches.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	// ListCompaniesByUserID returns only the companies userID is a member of.
	ListCompaniesByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Company, error)
	// FindMember returns apperrors.ErrNotFound when userID has no role in the company.
	FindMember(ctx context.Context, companyID, userID string) (*domain.CompanyMember, error)
	ListMembers(ctx context.Context, companyID string) ([]domain.CompanyMember, error)
}

type CompanyWriter interface {
	// SaveCompany inserts the company and its first admin in one transaction.
	SaveCompany(ctx context.Context, company domain.Company, creator domain.CompanyMember) error
	UpdateCompany(ctx context.Context, company domain.Company) error
	// SaveMember inserts a membership or replaces the role of an existing one.
	SaveMember(ctx context.Context, member domain.CompanyMember) error
}

// CompanyRepositoryFacade combines company reads and writes.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
