package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionIDBytes gives 256 bits of entropy, hex encoded to 64 characters.
const sessionIDBytes = 32

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSessionID returns an opaque, unguessable session identifier.
func NewSessionID() (string, error) {
	return GenerateSecureRandomString(sessionIDBytes)
}
