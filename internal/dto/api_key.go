package dto

import (
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type APIKeyResponse struct {
	KeyID      string     `json:"keyID"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"keyPrefix"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPIKeyResponse is the only response that carries the plaintext key.
type CreateAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

type ListAPIKeysResponse struct {
	Keys []APIKeyResponse `json:"keys"`
}

func ToAPIKeyResponse(k *domain.CompanyAPIKey) APIKeyResponse {
	return APIKeyResponse{
		KeyID:      k.KeyID,
		Name:       k.Name,
		KeyPrefix:  k.KeyPrefix,
		LastUsedAt: k.LastUsedAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func ToListAPIKeysResponse(keys []domain.CompanyAPIKey) ListAPIKeysResponse {
	out := make([]APIKeyResponse, len(keys))
	for i := range keys {
		out[i] = ToAPIKeyResponse(&keys[i])
	}
	return ListAPIKeysResponse{Keys: out}
}
