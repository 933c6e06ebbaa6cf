// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The salt and
	// work factor are embedded in the returned string.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	Check(password, hash string) bool
}
