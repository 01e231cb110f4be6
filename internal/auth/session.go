package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/palmview/hotel-booking-web/internal/user"
)

// Session is the resolved identity for one browser. Verified is false when
// the user record came from the cached copy instead of a fresh backend
// lookup, so security-sensitive pages can demand re-verification.
type Session struct {
	User     *user.User
	Token    string
	Verified bool
}

// IsAdmin reports whether the session belongs to an admin user.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.IsAdmin()
}

// sessionClaims is the cookie payload: the backend bearer token plus the last
// known user record, the durable client state of this tier.
type sessionClaims struct {
	Token string    `json:"tok"`
	User  user.User `json:"usr"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies the session cookie.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionCodec creates a new session codec.
func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the lifetime given to encoded cookies.
func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

// Encode packs the backend token and user record into a signed cookie value.
func (c *SessionCodec) Encode(token string, u *user.User) (string, error) {
	now := time.Now().UTC()

	claims := &sessionClaims{
		Token: token,
		User:  *u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signed, nil
}

// Decode verifies a cookie value and returns the stored token and cached user.
func (c *SessionCodec) Decode(value string) (string, *user.User, error) {
	parsed, err := jwt.ParseWithClaims(value, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return c.secret, nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse session cookie: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", nil, errors.New("invalid session cookie")
	}

	cached := claims.User
	return claims.Token, &cached, nil
}
