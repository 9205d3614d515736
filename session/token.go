package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoToken      = errors.New("no token in session")
	ErrTokenExpired = errors.New("token is expired")
)

// Claims are the identity fields the UI reads from a bearer token. They
// are decoded WITHOUT signature verification, so they are advisory: good
// enough to gate rendering and greet the operator, never good enough to
// grant anything. The backend's /auth/verify endpoint is the authority.
type Claims struct {
	Subject   string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim has passed. Tokens with
// no exp claim are treated as expired rather than immortal.
func (c Claims) Expired() bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().After(c.ExpiresAt)
}

// DecodeClaims reads the payload of a bearer token without verifying its
// signature. Any decode failure is reported as ErrTokenExpired: the UI
// treats a malformed credential the same as a stale one.
func DecodeClaims(token string) (Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Claims{}, ErrTokenExpired
	}

	out := Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if name, ok := claims["username"].(string); ok {
		out.Username = name
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
