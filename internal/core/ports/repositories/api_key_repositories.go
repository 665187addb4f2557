package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

// APIKeyRepository defines data access for company webhook keys.
type APIKeyRepository interface {
	SaveAPIKey(ctx context.Context, key domain.CompanyAPIKey) error

	// FindActiveAPIKeysByPrefix returns the non-revoked keys sharing a prefix.
	FindActiveAPIKeysByPrefix(ctx context.Context, prefix string) ([]domain.CompanyAPIKey, error)

	ListAPIKeys(ctx context.Context, companyID string) ([]domain.CompanyAPIKey, error)

	// RevokeAPIKey returns apperrors.ErrNotFound when the key does not exist or is already revoked.
	RevokeAPIKey(ctx context.Context, companyID, keyID string, at time.Time) error

	TouchAPIKey(ctx context.Context, keyID string, at time.Time) error
}
