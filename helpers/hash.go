package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the plaintext. The digest is
// unsalted, so the same password always hashes to the same value; login
// compares digests by equality in the store query.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
