// Package token signs and verifies the compact claim sets used for
// stateless authentication. The signing secret and TTL are fixed at
// construction; Issue and Verify hold no shared mutable state and are safe
// for unlimited concurrent callers.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the payload embedded in every issued token.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec with the process-wide secret and token TTL.
// A non-positive TTL falls back to 24h.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured validity window.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue builds claims valid from now until now+TTL and returns the signed
// compact token. Two issuances for the same user at different instants
// produce different tokens.
func (c *Codec) Issue(userID int64, username string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a compact token, returning its claims.
// Failures map onto the domain taxonomy: structure that cannot be decoded is
// ErrTokenMalformed, a signature mismatch is ErrTokenSignatureInvalid, and a
// valid token past its expiry is ErrTokenExpired.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			// The claims were decoded before the signature check ran.
			// A token past its expiry reports as expired even when the
			// signature no longer verifies.
			if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
				return nil, domain.ErrTokenExpired
			}
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tok.Valid {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
