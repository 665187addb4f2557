package mapping

import (
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/models"
)

func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:            d.ContactID,
		CompanyID:            d.CompanyID,
		Name:                 d.Name,
		Email:                d.Email,
		Phone:                optionalString(d.Phone),
		ProductName:          optionalString(d.ProductName),
		Source:               string(d.Source),
		StudentAccessGranted: d.StudentAccessGranted,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:            m.ContactID,
		CompanyID:            m.CompanyID,
		Name:                 m.Name,
		Email:                m.Email,
		Phone:                derefString(m.Phone),
		ProductName:          derefString(m.ProductName),
		Source:               domain.ContactSource(m.Source),
		StudentAccessGranted: m.StudentAccessGranted,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}
