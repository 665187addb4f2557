package models

import "time"

// CompanyAPIKey is the row stored in company_api_keys.
type CompanyAPIKey struct {
	KeyID      string     `db:"key_id"`
	CompanyID  string     `db:"company_id"`
	Name       string     `db:"name"`
	KeyPrefix  string     `db:"key_prefix"`
	KeyHash    string     `db:"key_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
	CreatedAt  time.Time  `db:"created_at"`
	CreatedBy  string     `db:"created_by"`
}

