package dto

import (
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

// PurchaseWebhookRequest is posted by the checkout platform after a sale.
type PurchaseWebhookRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Phone       string `json:"phone" binding:"omitempty,max=32"`
	ProductName string `json:"productName" binding:"omitempty,max=255"`
}

type ContactResponse struct {
	ContactID            string               `json:"contactID"`
	CompanyID            string               `json:"companyID"`
	Name                 string               `json:"name"`
	Email                string               `json:"email"`
	Phone                string               `json:"phone,omitempty"`
	ProductName          string               `json:"productName,omitempty"`
	Source               domain.ContactSource `json:"source"`
	StudentAccessGranted bool                 `json:"studentAccessGranted"`
	CreatedAt            time.Time            `json:"createdAt"`
	LastUpdatedAt        time.Time            `json:"lastUpdatedAt"`
}

type ListContactsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:            c.ContactID,
		CompanyID:            c.CompanyID,
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		ProductName:          c.ProductName,
		Source:               c.Source,
		StudentAccessGranted: c.StudentAccessGranted,
		CreatedAt:            c.CreatedAt,
		LastUpdatedAt:        c.LastUpdatedAt,
	}
}

func ToListContactsResponse(contacts []domain.Contact) ListContactsResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = ToContactResponse(&contacts[i])
	}
	return ListContactsResponse{Contacts: out}
}
