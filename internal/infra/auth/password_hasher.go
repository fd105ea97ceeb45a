// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"scanbox/config"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewPasswordHasher is the constructor for bcryptHasher. Cost and the
// strength policy come from configuration, with bcrypt defaults as fallback.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation internally.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil only when the password and hash match; a malformed hash is
	// just a mismatch, never an error surfaced to the caller.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the signup password policy: minimum
// length plus upper, lower, digit and symbol character classes.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength
	if policy == nil {
		policy = &config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		}
	}

	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long")
	}
	if policy.RequireUppercase && !containsClass(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if policy.RequireLowercase && !containsClass(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if policy.RequireNumbers && !containsClass(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}
	if policy.RequireSpecial && !strings.ContainsFunc(password, isSpecialRune) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}

	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	return strings.ContainsFunc(s, class)
}

func isSpecialRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
