package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plaintext
// password using bcrypt.DefaultCost (cost factor 10).
//
// bcrypt embeds the salt in the produced hash, so no separate salt storage
// is needed. The plaintext must never be persisted.
//
// Returns:
//
//	string - the bcrypt hash in its standard encoded form
//	error  - non-nil if hashing fails (e.g. password longer than 72 bytes)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the given
// bcrypt hash. The comparison is performed by bcrypt itself and is safe
// against timing attacks.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
