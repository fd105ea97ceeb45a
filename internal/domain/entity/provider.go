package entity

// Provider represents the authentication method bound to an account.
// It is set once at account creation and never switched by profile syncs.
type Provider string

const (
	// ProviderLocal indicates email/password credentials.
	ProviderLocal Provider = "local"
	// ProviderGoogle indicates a Google-verified identity.
	ProviderGoogle Provider = "google"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle:
		return true
	default:
		return false
	}
}
