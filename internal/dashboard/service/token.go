package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const inviteTokenSize = 32

// generateToken returns an opaque URL-safe random token.
func generateToken() (string, error) {
	buf := make([]byte, inviteTokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// fingerprintToken returns the hex SHA-256 digest of a token. Only the
// fingerprint is ever persisted.
func fingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
