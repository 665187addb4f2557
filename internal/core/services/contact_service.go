package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/edu_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/SscSPs/edu_backoffice/internal/utils"
	"github.com/SscSPs/edu_backoffice/internal/utils/pagination"
	"github.com/google/uuid"
)

// WebhookActor is recorded as the author of writes made by the purchase webhook.
const WebhookActor = "webhook"

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
	phoneRegion string
}

func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, guard portssvc.CompanyGuardSvc, phoneRegion string) portssvc.ContactSvcFacade {
	if phoneRegion == "" {
		phoneRegion = utils.DefaultPhoneRegion
	}
	return &contactService{
		BaseService: BaseService{CompanyGuard: guard},
		contactRepo: contactRepo,
		phoneRegion: phoneRegion,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) ListContacts(ctx context.Context, companyID string, params dto.ListContactsParams, userID string) ([]domain.Contact, error) {
	if err := s.AuthorizeCompany(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.ListContacts(ctx, companyID, pagination.ClampLimit(params.Limit, 50, 200), max(params.Offset, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts", slog.String("company_id", companyID))
		return nil, err
	}
	if contacts == nil {
		return []domain.Contact{}, nil
	}
	return contacts, nil
}

func (s *contactService) RegisterPurchase(ctx context.Context, companyID string, req dto.PurchaseWebhookRequest) (*domain.Contact, error) {
	if err := s.EnsureCompany(ctx, companyID); err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		normalized, err := utils.NormalizePhone(phone, s.phoneRegion)
		if err != nil {
			// keep what the checkout sent; a bad phone must not lose the sale
			s.LogWarn(ctx, "Could not normalize buyer phone", slog.String("company_id", companyID), slog.String("error", err.Error()))
		} else {
			phone = normalized
		}
	}

	contact := domain.Contact{
		ContactID:            uuid.NewString(),
		CompanyID:            companyID,
		Name:                 strings.TrimSpace(req.Name),
		Email:                strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:                phone,
		ProductName:          strings.TrimSpace(req.ProductName),
		Source:               domain.ContactSourceWebhook,
		StudentAccessGranted: true,
	}
	contact.Stamp(s.Now(), WebhookActor)

	stored, err := s.contactRepo.UpsertContact(ctx, contact)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert contact", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase registered",
		slog.String("company_id", companyID),
		slog.String("contact_id", stored.ContactID),
		slog.String("product", stored.ProductName))
	return stored, nil
}
