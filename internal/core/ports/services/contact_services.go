package services

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/dto"
)

type ContactReaderSvc interface {
	ListContacts(ctx context.Context, companyID string, params dto.ListContactsParams, userID string) ([]domain.Contact, error)
}

// PurchaseIntakeSvc handles purchases reported by the checkout webhook.
type PurchaseIntakeSvc interface {
	// RegisterPurchase upserts the buyer as a contact and grants student access.
	RegisterPurchase(ctx context.Context, companyID string, req dto.PurchaseWebhookRequest) (*domain.Contact, error)
}

type ContactSvcFacade interface {
	ContactReaderSvc
	PurchaseIntakeSvc
}
