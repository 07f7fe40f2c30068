// Package security provides helpers for handling API credentials safely.
package security

import (
	"crypto/subtle"
	"regexp"
	"strings"
)

var (
	unsafeKeyChars   = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	unsafeTokenChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
	hexPattern       = regexp.MustCompile(`^[a-fA-F0-9]+$`)
)

// SecretValidator validates and masks API credentials
type SecretValidator struct {
	minLength int
	maxLength int
}

// NewSecretValidator creates a validator with reasonable defaults
func NewSecretValidator() *SecretValidator {
	return &SecretValidator{
		minLength: 8,
		maxLength: 512,
	}
}

// SanitizeAPIKey trims whitespace and strips characters unsafe for a URL query.
func (v *SecretValidator) SanitizeAPIKey(apiKey string) string {
	return unsafeKeyChars.ReplaceAllString(strings.TrimSpace(apiKey), "")
}

// SanitizeToken trims whitespace and strips characters unsafe for a header.
// JWT-style bearer tokens keep their dots.
func (v *SecretValidator) SanitizeToken(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "Bearer ")
	return unsafeTokenChars.ReplaceAllString(token, "")
}

// IsValidTMDBKey reports whether apiKey looks like a v3 TMDB key (32 hex chars).
func (v *SecretValidator) IsValidTMDBKey(apiKey string) bool {
	return len(apiKey) == 32 && hexPattern.MatchString(apiKey)
}

// IsValidToken checks bearer token length bounds.
func (v *SecretValidator) IsValidToken(token string) bool {
	return len(token) >= v.minLength && len(token) <= v.maxLength
}

// Mask creates a masked version for logging (shows only first/last few chars)
func (v *SecretValidator) Mask(secret string) string {
	if len(secret) == 0 {
		return "[empty]"
	}

	if len(secret) <= 8 {
		return "[***]"
	}

	return secret[:3] + "..." + secret[len(secret)-3:]
}

// SecureCompare performs constant-time comparison of two secrets
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
