package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed input, a
// signature that does not match the service secret, and expiry. Callers do
// not need to know which; a presented-but-bad credential is one class.
var ErrInvalidToken = errors.New("invalid or expired token")

// Service issues and verifies signed identity tokens. Tokens are HS256
// JWTs carrying the account ID as subject, stateless by design: there is
// no server-side session record behind them.
type Service struct {
	secret   []byte
	lifetime time.Duration
}

// NewService builds a token service signing with secret; issued tokens
// expire after lifetime.
func NewService(secret []byte, lifetime time.Duration) *Service {
	return &Service{secret: secret, lifetime: lifetime}
}

// Issue signs a token asserting subject, valid from now until now plus the
// configured lifetime.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the asserted subject.
// Any failure returns ErrInvalidToken.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
