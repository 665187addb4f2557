package services

import (
	"context"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/dto"
)

type APIKeyManagerSvc interface {
	// IssueAPIKey returns the stored key and its plaintext, which is never retrievable again.
	IssueAPIKey(ctx context.Context, companyID string, req dto.CreateAPIKeyRequest, userID string) (*domain.CompanyAPIKey, string, error)
	ListAPIKeys(ctx context.Context, companyID, userID string) ([]domain.CompanyAPIKey, error)
	RevokeAPIKey(ctx context.Context, companyID, keyID, userID string) error
}

// APIKeyValidatorSvc authenticates webhook callers.
type APIKeyValidatorSvc interface {
	// ValidateAPIKey returns the owning company id, or apperrors.ErrUnauthorized.
	ValidateAPIKey(ctx context.Context, plaintext string) (string, error)
}

type APIKeySvcFacade interface {
	APIKeyManagerSvc
	APIKeyValidatorSvc
}
