package helper

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// ResetTokenTTL bounds how long a password-reset token stays valid.
const ResetTokenTTL = 10 * time.Minute

// GenerateResetToken returns the raw token (handed to the user out-of-band)
// and the sha256 hex digest that goes into the database. The raw token is
// never persisted.
func GenerateResetToken() (raw string, hashed string) {
	b := make([]byte, 20)
	_, _ = rand.Read(b)
	raw = hex.EncodeToString(b)
	return raw, HashResetToken(raw)
}

// HashResetToken maps a presented raw token to its stored form.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// ResetTokenValid checks a stored hash/expiry pair against a presented raw
// token at the given instant.
func ResetTokenValid(storedHash string, expires *time.Time, raw string, now time.Time) bool {
	if storedHash == "" || expires == nil {
		return false
	}
	if now.After(*expires) {
		return false
	}
	return HashResetToken(raw) == storedHash
}
