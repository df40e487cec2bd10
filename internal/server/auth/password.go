package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored passwords.
const PasswordCost = 10

// HashPassword returns a salted bcrypt hash of password. Passwords bcrypt
// cannot hash in full are common.ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", common.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is
// an error, a plain mismatch is not.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}
