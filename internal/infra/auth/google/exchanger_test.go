package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"scanbox/config"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
	"scanbox/internal/errors"
)

// fakeVerifier accepts every ID token and returns a fixed profile.
type fakeVerifier struct {
	profile *service.OAuthProfile
	err     error
	gotToken string
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthProfile, error) {
	f.gotToken = idToken

	return f.profile, f.err
}

func (f *fakeVerifier) Provider() entity.Provider {
	return entity.ProviderGoogle
}

func newTestExchanger(verifier service.OAuthVerifier) *exchanger {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		RedirectURI:  "https://api.example.com/auth/google-callback",
	}}

	return NewExchanger(cfg, verifier, slog.New(slog.NewTextHandler(io.Discard, nil))).(*exchanger)
}

func TestExchanger_StateLifecycle(t *testing.T) {
	e := newTestExchanger(&fakeVerifier{})

	state := e.NewState()
	assert.NotEmpty(t, state)

	// Single use.
	assert.True(t, e.ConsumeState(state))
	assert.False(t, e.ConsumeState(state))

	// Unknown nonce.
	assert.False(t, e.ConsumeState("never-issued"))
}

func TestExchanger_AuthorizationURL(t *testing.T) {
	e := newTestExchanger(&fakeVerifier{})

	url := e.AuthorizationURL("some-state")
	assert.Contains(t, url, "client_id=test_client_id")
	assert.Contains(t, url, "state=some-state")
	assert.Contains(t, url, "prompt=select_account")
	assert.Contains(t, url, "scope=openid+email+profile")
}

func TestExchanger_ExchangeCode(t *testing.T) {
	tokenEndpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "one-time-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600,"id_token":"signed-id-token"}`))
	}))
	defer tokenEndpoint.Close()

	verifier := &fakeVerifier{profile: &service.OAuthProfile{
		Subject:  "google_user_123",
		Email:    "b@x.com",
		Name:     "Bo",
		Provider: entity.ProviderGoogle,
	}}
	e := newTestExchanger(verifier)
	e.oauthConfig.Endpoint = oauth2.Endpoint{TokenURL: tokenEndpoint.URL}

	profile, err := e.ExchangeCode(context.Background(), "one-time-code")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", profile.Email)
	assert.Equal(t, "signed-id-token", verifier.gotToken)
}

func TestExchanger_ExchangeFailsWithoutIDToken(t *testing.T) {
	tokenEndpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenEndpoint.Close()

	e := newTestExchanger(&fakeVerifier{})
	e.oauthConfig.Endpoint = oauth2.Endpoint{TokenURL: tokenEndpoint.URL}

	profile, err := e.ExchangeCode(context.Background(), "one-time-code")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeFailed))
}

func TestExchanger_ExchangeFailsOnProviderError(t *testing.T) {
	tokenEndpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer tokenEndpoint.Close()

	e := newTestExchanger(&fakeVerifier{})
	e.oauthConfig.Endpoint = oauth2.Endpoint{TokenURL: tokenEndpoint.URL}

	profile, err := e.ExchangeCode(context.Background(), "bad-code")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeFailed))
}
