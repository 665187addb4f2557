package mapping

import (
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/models"
)

func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Document:    optionalString(d.Document),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Document:    derefString(m.Document),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

func ToModelCompanyMember(d domain.CompanyMember) models.CompanyMember {
	return models.CompanyMember{
		CompanyID:   d.CompanyID,
		UserID:      d.UserID,
		Role:        string(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCompanyMember(m models.CompanyMember) domain.CompanyMember {
	return domain.CompanyMember{
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		Role:        domain.MemberRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCompanyMemberSlice(ms []models.CompanyMember) []domain.CompanyMember {
	ds := make([]domain.CompanyMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompanyMember(m)
	}
	return ds
}
