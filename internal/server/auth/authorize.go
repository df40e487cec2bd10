package auth

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/electro/internal/common"
)

// Authorize checks an Authorization header value of the form
// "Bearer <token>".
//
// A missing header or an empty token is common.ErrUnauthenticated. Any other
// scheme or a token that fails verification is common.ErrUnauthorized.
func Authorize(header string, secretKey []byte, now func() time.Time) (Identity, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Identity{}, common.ErrUnauthenticated
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, common.BearerScheme) {
		return Identity{}, common.ErrUnauthorized
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, common.ErrUnauthenticated
	}

	return ParseToken(token, secretKey, now)
}
