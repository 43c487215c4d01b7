// Package service declares the domain services that infrastructure implements:
// credential hashing, session tokens and emergency card QR codes.
package service

// PasswordHasher turns account passwords into salted one-way hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Each call uses a fresh salt.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
