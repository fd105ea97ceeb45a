package service

import (
	"context"

	"scanbox/internal/domain/entity"
)

// OAuthProfile is the verified identity a provider flow terminates in.
// Email is mandatory; flows that cannot produce one must fail.
type OAuthProfile struct {
	Subject       string          // Provider-specific user ID (Google 'sub' claim).
	Email         string          // Verified email address.
	Name          string          // Display name, may be empty.
	Picture       string          // Avatar URL, may be empty.
	EmailVerified bool            // Whether the provider vouches for the email.
	Provider      entity.Provider // The provider that verified this identity.
}

// OAuthVerifier verifies a provider-issued ID token (signature, issuer,
// audience, expiry) and returns the profile claims it carries.
type OAuthVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthProfile, error)
	Provider() entity.Provider
}

// OAuthExchanger drives the authorization-code flow: it builds the consent
// URL and exchanges a one-time code server-to-server for a verified profile.
type OAuthExchanger interface {
	// NewState mints and remembers a random state nonce for CSRF protection.
	NewState() string
	// ConsumeState validates a callback state nonce; each nonce is single-use.
	ConsumeState(state string) bool
	// AuthorizationURL returns the provider consent URL carrying state.
	AuthorizationURL(state string) string
	// ExchangeCode swaps the callback code for tokens and verifies the
	// resulting ID token exactly like OAuthVerifier.
	ExchangeCode(ctx context.Context, code string) (*OAuthProfile, error)
}
