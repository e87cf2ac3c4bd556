package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "inkwell/internal/errors"
)

// bcryptCost is the work factor used for password hashing.
const bcryptCost = 10

// HashPassword creates a bcrypt hash of the plaintext password. The returned
// string encodes both the random salt and the digest.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against its stored hash.
func CheckPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
