package repositories

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

type ContactReader interface {
	ListContacts(ctx context.Context, companyID string, limit, offset int) ([]domain.Contact, error)
}

type ContactWriter interface {
	// UpsertContact inserts or updates by (company_id, email) and returns the stored row.
	UpsertContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
}

type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
