package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential schemes selectable through configuration.
const (
	CredentialSchemePlaintext = "plaintext"
	CredentialSchemeBcrypt    = "bcrypt"
)

// CredentialVerifier turns a secret into its stored form and checks candidates against it.
type CredentialVerifier interface {
	Hash(secret string) (string, error)
	Verify(stored, candidate string) bool
}

// PlaintextVerifier stores secrets as given and compares them exactly.
type PlaintextVerifier struct{}

// Hash returns the secret unchanged.
func (PlaintextVerifier) Hash(secret string) (string, error) {
	return secret, nil
}

// Verify performs an exact, case-sensitive comparison.
func (PlaintextVerifier) Verify(stored, candidate string) bool {
	return stored == candidate
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

// Hash produces a bcrypt hash of the secret.
func (v BcryptVerifier) Hash(secret string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify compares the candidate with the stored bcrypt hash.
func (BcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// NewCredentialVerifier resolves a configured scheme name.
func NewCredentialVerifier(scheme string) (CredentialVerifier, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", CredentialSchemePlaintext:
		return PlaintextVerifier{}, nil
	case CredentialSchemeBcrypt:
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", scheme)
	}
}
