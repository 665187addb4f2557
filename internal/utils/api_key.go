package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	apiKeyScheme      = "bo"
	apiKeyPrefixBytes = 4  // 8 hex chars, stored in clear for lookup
	apiKeySecretBytes = 24 // 48 hex chars; whole key stays under bcrypt's 72 byte limit
)

// GeneratedAPIKey is a freshly minted key. Plaintext is shown to the caller once.
type GeneratedAPIKey struct {
	Plaintext string
	Prefix    string
	Hash      string
}

// GenerateAPIKey returns a key of the form bo_<prefix>_<secret> with its bcrypt hash.
func GenerateAPIKey() (*GeneratedAPIKey, error) {
	prefix, err := randomHex(apiKeyPrefixBytes)
	if err != nil {
		return nil, err
	}
	secret, err := randomHex(apiKeySecretBytes)
	if err != nil {
		return nil, err
	}
	plaintext := fmt.Sprintf("%s_%s_%s", apiKeyScheme, prefix, secret)
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash api key: %w", err)
	}
	return &GeneratedAPIKey{Plaintext: plaintext, Prefix: prefix, Hash: string(hash)}, nil
}

// APIKeyPrefix extracts the lookup prefix from a presented key.
func APIKeyPrefix(key string) (string, bool) {
	parts := strings.SplitN(key, "_", 3)
	if len(parts) != 3 || parts[0] != apiKeyScheme || len(parts[1]) != apiKeyPrefixBytes*2 || parts[2] == "" {
		return "", false
	}
	return parts[1], true
}

// CheckAPIKey compares a presented key with a stored bcrypt hash.
func CheckAPIKey(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

func randomHex(lengthInBytes int) (string, error) {
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
