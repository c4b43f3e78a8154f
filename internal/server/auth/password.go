package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// storedPassword is the representation of a credential's stored password,
// resolved once per verification call from the raw stored string.
type storedPassword interface {
	verify(candidate string) bool
}

// hashedPassword is a bcrypt digest ("$2a$..." / "$2b$...").
type hashedPassword string

func (h hashedPassword) verify(candidate string) bool {
	// Any comparison failure, including a malformed digest, is a mismatch.
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(candidate)) == nil
}

// plaintextPassword is a legacy cleartext value. This path exists only for
// incremental credential migration and is a known security downgrade;
// credentials should be rehashed with bcrypt as they are touched.
type plaintextPassword string

func (p plaintextPassword) verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(p), []byte(candidate)) == 1
}

// parseStoredPassword dispatches on the bcrypt version prefix. The check is
// case-sensitive: only "$2a$" and "$2b$" select the hashed path.
func parseStoredPassword(stored string) storedPassword {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return hashedPassword(stored)
	}
	return plaintextPassword(stored)
}

// VerifyPassword reports whether supplied matches the stored password
// representation, supporting both bcrypt digests and legacy cleartext.
func VerifyPassword(supplied, stored string) bool {
	return parseStoredPassword(stored).verify(supplied)
}

// HashPassword produces a bcrypt digest for storing a new password.
// The cost mirrors the provisioning scripts (>= 10 rounds).
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}
