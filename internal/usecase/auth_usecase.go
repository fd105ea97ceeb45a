// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scanbox/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a local account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// Google login flows. FlowIDToken is the default when the client omits it.
const (
	FlowIDToken = "id_token"
	FlowCode    = "code"
)

// GoogleLoginInput carries either a Google ID token (direct flow) or a
// one-time authorization code, selected by Flow.
type GoogleLoginInput struct {
	Credential string
	Flow       string
}

// --- Output DTOs ---

// SessionOutput returns the signed session token and the authenticated user.
type SessionOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the authentication business operations the delivery
// layer depends on.
type AuthUsecase interface {
	// Signup creates a local account and opens a session.
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)
	// Login checks local credentials and opens a session. Accounts created
	// through Google cannot password-login.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	// GoogleLogin terminates either Google flow in a verified profile, then
	// finds or creates the matching account and opens a session.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*SessionOutput, error)
	// GoogleRedirectURL mints a state nonce and returns the consent URL.
	GoogleRedirectURL(ctx context.Context) (string, error)
	// GoogleCallback burns the state nonce, exchanges the code and opens a
	// session like GoogleLogin.
	GoogleCallback(ctx context.Context, state, code string) (*SessionOutput, error)
	// CurrentUser re-reads the authenticated user from the store.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
