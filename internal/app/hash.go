package app

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword derives the stored verifier for a password: the lowercase hex
// sha256 digest of the plaintext. Deterministic and unsalted, which means two
// accounts with the same password share a verifier. This matches the verifiers
// already in the legacy database; a deployment starting from an empty store
// should move to a salted scheme instead.
func HashPassword(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
