// Package service defines domain-level service contracts whose
// implementations live in the infra layer.
package service

// PasswordHasher handles password hashing and verification.
type PasswordHasher interface {
	// Hash derives a one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
