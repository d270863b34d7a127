package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123456", hash)

	// Each hash carries its own salt.
	other, err := HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		storedHash string
		supplied   string
		want       bool
	}{
		{
			name:       "matching pair",
			storedHash: hash,
			supplied:   "pw123456",
			want:       true,
		},
		{
			name:       "mismatched password",
			storedHash: hash,
			supplied:   "wrong-password",
			want:       false,
		},
		{
			name:       "no password set fails closed",
			storedHash: "",
			supplied:   "pw123456",
			want:       false,
		},
		{
			name:       "malformed stored hash",
			storedHash: "not-a-bcrypt-hash",
			supplied:   "pw123456",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.storedHash, tt.supplied))
		})
	}
}
