// Package crypto provides the password hashing primitives of the
// authentication service.
//
// Hashing uses bcrypt: the produced hash embeds its own salt and cost, so
// verification needs no side channel and every call with the same input
// yields a different hash.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for new password hashes.
const hashCost = 10

// HashPassword derives a one-way, salted bcrypt hash from the plaintext
// password. The plaintext is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword verifies plaintext password against a stored bcrypt hash.
// Returns nil when the password matches, an error otherwise.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
