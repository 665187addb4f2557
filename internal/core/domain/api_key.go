package domain

import "time"

// CompanyAPIKey authenticates webhook calls on behalf of a company.
type CompanyAPIKey struct {
	KeyID      string     `json:"keyID"`
	CompanyID  string     `json:"companyID"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"keyPrefix"`
	KeyHash    string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy"`
}

// IsRevoked checks if the key was revoked
func (k *CompanyAPIKey) IsRevoked() bool {
	return k.RevokedAt != nil
}
