// Package service defines the domain service contracts implemented under
// internal/infra.
package service

// PasswordHasher hashes and verifies local credentials. Hashing is one-way
// and salted internally.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check never errors: any mismatch or malformed hash is simply false.
	Check(password, hash string) bool
	// ValidatePasswordStrength enforces the signup password policy.
	ValidatePasswordStrength(password string) error
}
