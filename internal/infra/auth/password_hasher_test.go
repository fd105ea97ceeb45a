package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"scanbox/config"
)

func newTestHasher(cost int) *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: cost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}

	return NewPasswordHasher(cfg).(*bcryptHasher)
}

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)
	password := "Abcdef1!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password
	assert.True(t, hasher.Check(password, hash))

	// Incorrect password
	assert.False(t, hasher.Check("Wrong1!pass", hash))

	// Empty password
	assert.False(t, hasher.Check("", hash))

	// Malformed hash is a mismatch, never a panic or error
	assert.False(t, hasher.Check(password, "not_a_bcrypt_hash"))
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher(6)

	hash, err := hasher.Hash("Abcdef1!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestPasswordHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	valid := []string{
		"Abcdef1!",
		"MySecure@Pass1",
		"Valid$Phrase2024",
		"Pässphräse123!",
	}
	for _, password := range valid {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), "expected %q to pass", password)
	}

	tests := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "at least 8 characters"},
		{"abcdef1!", "uppercase letter"},
		{"ABCDEF1!", "lowercase letter"},
		{"Abcdefg!", "one number"},
		{"Abcdefg1", "special character"},
	}
	for _, tc := range tests {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "expected %q to fail", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestPasswordHasher_DefaultPolicyWhenUnconfigured(t *testing.T) {
	hasher := NewPasswordHasher(&config.Config{}).(*bcryptHasher)

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Abcdef1!"))
}
