package service

import (
	"testing"
	"time"

	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-123"

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService(testSecret, 15*time.Minute)

	assert.NotNil(t, ts)
	assert.Equal(t, 15*time.Minute, ts.GetTokenTTL())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ts := NewTokenService(testSecret, time.Hour).WithClock(fixedClock(issuedAt))

	token, err := ts.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("verifies before expiry", func(t *testing.T) {
		verifier := NewTokenService(testSecret, time.Hour).
			WithClock(fixedClock(issuedAt.Add(30 * time.Minute)))

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("rejects a different secret", func(t *testing.T) {
		verifier := NewTokenService("another-secret", time.Hour).
			WithClock(fixedClock(issuedAt.Add(time.Minute)))

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrInvalidSignature)
	})

	t.Run("rejects after expiry", func(t *testing.T) {
		verifier := NewTokenService(testSecret, time.Hour).
			WithClock(fixedClock(issuedAt.Add(time.Hour + time.Second)))

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrExpiredToken)
	})
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a token", token: "not.a.token"},
		{name: "empty string", token: ""},
		{name: "two segments", token: "abc.def"},
		{name: "garbage payload", token: "e30.!!!.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			assert.ErrorIs(t, err, autherror.ErrMalformedToken)
		})
	}
}

func TestTokenService_Verify_MissingClaims(t *testing.T) {
	now := time.Now()
	ts := NewTokenService(testSecret, time.Hour)

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{
			name: "missing subject",
			claims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		},
		{
			name: "missing issued-at",
			claims: jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		},
		{
			name: "missing expiry",
			claims: jwt.RegisteredClaims{
				Subject:  "user-123",
				IssuedAt: jwt.NewNumericDate(now),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Well signed, wrong shape.
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).
				SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = ts.Verify(token)
			assert.ErrorIs(t, err, autherror.ErrMalformedToken)
		})
	}
}

func TestTokenService_Verify_WrongSigningMethod(t *testing.T) {
	ts := NewTokenService(testSecret, time.Hour)

	// alg=none tokens must never pass the HMAC check.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, autherror.ErrMalformedToken)
}
