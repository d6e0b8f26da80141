package ports

// PasswordHasher hashes and verifies delivery access passwords. The
// plaintext never reaches the domain model; only the hash is stored on
// the access grant.
type PasswordHasher interface {
	// Hash derives a storable hash from the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the stored hash.
	Verify(hash, password string) bool
}
