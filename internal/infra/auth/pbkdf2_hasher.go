// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"carrental/internal/domain/service"
	"carrental/internal/errors"
)

// PBKDF2 parameters. The iteration count is deliberately high so brute-forcing
// a stolen hash stays expensive for a local application.
const (
	saltSize          = 16 // 128-bit
	keySize           = 32 // 256-bit
	defaultIterations = 100_000
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA256 with an independently stored salt.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher with the default
// iteration count.
func NewPBKDF2Hasher() service.PasswordHasher {
	return NewPBKDF2HasherWithIterations(defaultIterations)
}

// NewPBKDF2HasherWithIterations allows tuning the iteration count, mainly so
// tests can trade hardness for speed.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a 256-bit key from the password and a fresh 128-bit random
// salt. Hash and salt are returned base64-encoded so both can be stored as
// text.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	saltBytes := make([]byte, saltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", errors.Wrap(err, "failed to generate random salt")
	}

	key := pbkdf2.Key([]byte(password), saltBytes, h.iterations, keySize, sha256.New)

	return base64.StdEncoding.EncodeToString(key),
		base64.StdEncoding.EncodeToString(saltBytes),
		nil
}

// Verify recomputes the derived key with the stored salt and compares it to
// the stored hash in constant time. Salt or hash values that are not valid
// base64 (for example a manually reset credential) verify as false instead of
// failing authentication with an error.
func (h *pbkdf2Hasher) Verify(password, salt, hash string) bool {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	hashBytes, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	computed := pbkdf2.Key([]byte(password), saltBytes, h.iterations, keySize, sha256.New)

	return subtle.ConstantTimeCompare(hashBytes, computed) == 1
}
