// Package security adapts password hashing to the ports the core consumes.
package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes delivery access passwords with bcrypt.
// The zero value uses bcrypt's default cost.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the given cost. A cost
// outside bcrypt's supported range falls back to the default.
func NewBcryptPasswordHasher(cost int) BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptPasswordHasher{cost: cost}
}

// Hash derives a storable hash from the plaintext password.
func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the stored hash.
func (h BcryptPasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
