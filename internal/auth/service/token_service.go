package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/session-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(subject string) (string, error)
	Verify(tokenString string) (*Claims, error)
	GetTokenTTL() time.Duration
}

// Claims is the payload shape of every token this service issues:
// subject plus issued-at and expiry timestamps, HS256-signed.
type Claims struct {
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests to pin issuance
// and expiry checks to a fixed instant.
func (ts *TokenService) WithClock(now func() time.Time) *TokenService {
	ts.now = now
	return ts
}

func (ts *TokenService) Issue(subject string) (string, error) {
	now := ts.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// Verify checks the signature and expiry of a token and returns its
// claims. Failures map onto the service error kinds: a bad MAC is
// ErrInvalidSignature, a lapsed expiry is ErrExpiredToken, and
// anything that does not parse into the expected shape is
// ErrMalformedToken.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, autherror.ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, autherror.ErrExpiredToken
		default:
			return nil, autherror.ErrMalformedToken
		}
	}

	if !token.Valid {
		return nil, autherror.ErrMalformedToken
	}

	// Strict payload shape: a token without a subject or timestamps
	// is rejected even when its signature checks out.
	if claims.Subject == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, autherror.ErrMalformedToken
	}

	return claims, nil
}

func (ts *TokenService) GetTokenTTL() time.Duration {
	return ts.ttl
}
