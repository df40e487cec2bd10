// Package auth issues and verifies session tokens and password hashes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a valid token says about its bearer.
type Identity struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Claims are the registered claims plus the bearer's identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// GenerateToken signs an HS256 token for id valid for validity from now.
func GenerateToken(id Identity, secretKey []byte, validity time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Identity: id,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry against now and returns the
// embedded identity. Every failure is reported as common.ErrUnauthorized.
func ParseToken(tokenString string, secretKey []byte, now func() time.Time) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%w: token expired", common.ErrUnauthorized)
		}
		return Identity{}, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	if !token.Valid {
		return Identity{}, common.ErrUnauthorized
	}

	return claims.Identity, nil
}
