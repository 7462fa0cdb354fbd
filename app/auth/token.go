package auth

import (
	"errors"
	"fmt"
	"time"

	"boardapp/app/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

var (
	ErrMissingToken     = fmt.Errorf("%w: missing bearer token", apperrors.ErrUnauthorized)
	ErrMalformedToken   = fmt.Errorf("%w: malformed token", apperrors.ErrUnauthorized)
	ErrInvalidSignature = fmt.Errorf("%w: invalid token signature", apperrors.ErrUnauthorized)
	ErrExpired          = fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
)

// TokenVerifier resolves a bearer token to the account id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenService issues and verifies HS256 tokens. It holds no session state;
// a token is valid until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a TokenService signing with secret. A non-positive
// ttl selects DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenService{secret: key, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue returns a signed token for subject.
func (s *TokenService) Issue(subject string) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", apperrors.ErrInternal, err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns its subject.
func (s *TokenService) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "", ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	default:
		return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if claims.Subject == "" {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}
