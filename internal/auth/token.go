// Package auth implements the session subsystem: a JWT token service and
// the orchestrator that ties user records, tokens, and credential storage
// together.
package auth

import (
	"time"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/avolkovs/vitrina/internal/users"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is how long an issued session token stays valid.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims carries the identity fields embedded in a session token. Only the
// ID is trusted for lookups; email and name are a convenience snapshot of
// the user at issuance time.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens (HS256).
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenService{secret: secret, validity: validity, now: time.Now}
}

// WithClock replaces the time source, for deterministic expiry tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a fresh token for the user. Every login produces a new
// token; tokens are never mutated after issuance.
func (s *TokenService) Issue(u *users.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
// It is total: any failure — malformed token, bad signature, expiry —
// comes back as common.ErrTokenInvalid, so callers can uniformly treat a
// failed verification as "no session".
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
