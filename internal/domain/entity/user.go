// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserName is the placeholder display name used when a signup or an
// OAuth profile does not carry one.
const DefaultUserName = "Utilisateur"

// User is the core account entity. Exactly one authentication method applies
// per account: Provider decides whether PasswordHash is ever consulted.
type User struct {
	ID            uuid.UUID      // Unique identifier, assigned by the store at creation.
	Email         string         // Primary login identifier, unique across accounts.
	Name          string         // Display name, defaults to DefaultUserName.
	PasswordHash  string         // bcrypt hash, populated only when Provider is ProviderLocal. Never serialized to clients.
	Provider      Provider       // Authentication method fixed at account creation.
	Role          Role           // Authorization level, defaults to RoleUser. Only admin update paths may change it.
	Picture       string         // Optional avatar URL, synced from the OAuth profile for Google accounts.
	PrintSettings map[string]any // Per-user label printing presets, free-form document.
	CreatedAt     time.Time      // Timestamp of account creation.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// IsLocal reports whether the account authenticates with a stored password.
func (u *User) IsLocal() bool {
	return u.Provider == ProviderLocal
}
