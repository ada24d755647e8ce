// Package secrets generates the opaque credentials handed to totems and the
// digests they are stored under.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const tokenBytes = 32

// Generate creates a cryptographically secure random token, base64url encoded
// without padding.
func Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Digest returns the hex SHA3-256 digest under which a token is stored and
// looked up. Tokens are high-entropy, so an unsalted digest is enough to keep
// them out of storage while still allowing an indexed lookup.
func Digest(token string) string {
	sum := sha3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
