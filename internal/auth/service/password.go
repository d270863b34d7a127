package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the given
// cost. bcrypt embeds the salt and cost factor in the hash itself.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the supplied password matches the
// stored hash. An empty hash means the account has no password set
// and never matches. A malformed stored hash is a mismatch, not an
// error: the caller always sees it as invalid credentials.
func VerifyPassword(storedHash, suppliedPassword string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(suppliedPassword)) == nil
}
