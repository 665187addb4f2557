package mapping

import (
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/models"
)

// ToModelCompanyAPIKey converts a domain CompanyAPIKey to a model CompanyAPIKey
func ToModelCompanyAPIKey(d domain.CompanyAPIKey) models.CompanyAPIKey {
	return models.CompanyAPIKey{
		KeyID:      d.KeyID,
		CompanyID:  d.CompanyID,
		Name:       d.Name,
		KeyPrefix:  d.KeyPrefix,
		KeyHash:    d.KeyHash,
		LastUsedAt: d.LastUsedAt,
		RevokedAt:  d.RevokedAt,
		CreatedAt:  d.CreatedAt,
		CreatedBy:  d.CreatedBy,
	}
}

// ToDomainCompanyAPIKey converts a model CompanyAPIKey to a domain CompanyAPIKey
func ToDomainCompanyAPIKey(m models.CompanyAPIKey) domain.CompanyAPIKey {
	return domain.CompanyAPIKey{
		KeyID:      m.KeyID,
		CompanyID:  m.CompanyID,
		Name:       m.Name,
		KeyPrefix:  m.KeyPrefix,
		KeyHash:    m.KeyHash,
		LastUsedAt: m.LastUsedAt,
		RevokedAt:  m.RevokedAt,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

func ToDomainCompanyAPIKeySlice(ms []models.CompanyAPIKey) []domain.CompanyAPIKey {
	ds := make([]domain.CompanyAPIKey, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompanyAPIKey(m)
	}
	return ds
}
