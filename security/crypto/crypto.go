// Package crypto hashes and verifies account passwords with bcrypt.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = bcrypt.DefaultCost

	// maxPasswordBytes is the bcrypt input limit. Longer passwords are
	// truncated before hashing and comparing.
	maxPasswordBytes = 72
)

// HashPassword hashes the provided password using bcrypt with a random salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches hashedPassword. The
// comparison is constant time.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncate(password))
	return err == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
