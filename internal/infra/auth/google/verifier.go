// Package google implements the Google identity flows: ID-token verification
// and the authorization-code exchange.
package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"scanbox/config"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
)

// validateFunc matches idtoken.Validate; swapped out in tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// verifier checks Google-issued ID tokens against the configured client ID.
type verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier is the constructor for the Google ID-token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &verifier{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken verifies the token signature, issuer, audience and expiry
// through Google's certificates, then extracts the profile claims.
func (v *verifier) VerifyIDToken(ctx context.Context, token string) (*service.OAuthProfile, error) {
	if v.clientID == "" {
		return nil, domainerrors.ErrInvalidCredential.WrapMessage("google client id is not configured")
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredential.WrapMessage("id token verification failed")
	}

	profile := profileFromClaims(payload.Subject, payload.Claims)
	if profile.Email == "" {
		return nil, domainerrors.ErrMissingEmail.WrapMessage("verified google profile has no email")
	}

	v.logger.Debug("Google ID token verified",
		slog.String("sub", profile.Subject),
		slog.String("email", profile.Email))

	return profile, nil
}

// Provider returns the provider this verifier vouches for.
func (v *verifier) Provider() entity.Provider {
	return entity.ProviderGoogle
}

func profileFromClaims(subject string, claims map[string]any) *service.OAuthProfile {
	stringClaim := func(key string) string {
		s, _ := claims[key].(string)

		return s
	}
	verified, _ := claims["email_verified"].(bool)

	return &service.OAuthProfile{
		Subject:       subject,
		Email:         stringClaim("email"),
		Name:          stringClaim("name"),
		Picture:       stringClaim("picture"),
		EmailVerified: verified,
		Provider:      entity.ProviderGoogle,
	}
}
