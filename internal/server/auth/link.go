// Package auth signs and parses the compact token carried by emailed login
// links. The token only transports the email and the one-time secret; the
// secret is still checked against the stored hash.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidLink = errors.New("invalid link token")

// LinkClaims are the registered claims plus the link payload.
type LinkClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Token string `json:"tok"`
}

// GenerateLinkToken returns an HS256 token for email and the raw one-time
// token, valid until expiresAt.
func GenerateLinkToken(email, token string, key []byte, expiresAt time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, LinkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Token: token,
	})
	return t.SignedString(key)
}

// ParseLinkToken validates signature, algorithm and expiry at now and returns
// the payload. Every failure is ErrInvalidLink.
func ParseLinkToken(s string, key []byte, now time.Time) (email, token string, err error) {
	claims := &LinkClaims{}
	t, err := jwt.ParseWithClaims(s, claims, func(*jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !t.Valid {
		return "", "", ErrInvalidLink
	}
	if claims.Email == "" || claims.Token == "" {
		return "", "", ErrInvalidLink
	}
	return claims.Email, claims.Token, nil
}
