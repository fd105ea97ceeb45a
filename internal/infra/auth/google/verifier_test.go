package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"scanbox/config"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/errors"
)

func newTestVerifier(validate validateFunc) *verifier {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	v := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*verifier)
	if validate != nil {
		v.validate = validate
	}

	return v
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Subject: "google_user_123",
			Claims: map[string]any{
				"email":          "b@x.com",
				"email_verified": true,
				"name":           "Bo",
				"picture":        "https://example.com/bo.png",
			},
		}, nil
	})

	profile, err := v.VerifyIDToken(context.Background(), "some-id-token")
	require.NoError(t, err)
	assert.Equal(t, "google_user_123", profile.Subject)
	assert.Equal(t, "b@x.com", profile.Email)
	assert.Equal(t, "Bo", profile.Name)
	assert.Equal(t, "https://example.com/bo.png", profile.Picture)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, entity.ProviderGoogle, profile.Provider)
}

func TestVerifier_RejectsInvalidToken(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	profile, err := v.VerifyIDToken(context.Background(), "expired")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
}

func TestVerifier_RequiresEmail(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "no_email_user", Claims: map[string]any{"name": "Nobody"}}, nil
	})

	profile, err := v.VerifyIDToken(context.Background(), "token")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingEmail))
}

func TestVerifier_RequiresClientID(t *testing.T) {
	v := NewVerifier(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	profile, err := v.VerifyIDToken(context.Background(), "token")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredential))
}
