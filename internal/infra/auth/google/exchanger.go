package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"scanbox/config"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
)

const (
	// exchangeTimeout bounds the server-to-server token exchange; a timeout
	// surfaces as ExchangeFailed, never as a raw transport error.
	exchangeTimeout = 10 * time.Second

	// stateTTL bounds how long a consent redirect may stay pending.
	stateTTL = 10 * time.Minute
)

// exchanger implements the authorization-code flow on top of x/oauth2,
// terminating in the same ID-token verification as the direct flow.
type exchanger struct {
	oauthConfig *oauth2.Config
	verifier    service.OAuthVerifier
	logger      *slog.Logger

	// Pending state nonces for CSRF protection, single-use with expiry.
	stateMutex sync.Mutex
	stateStore map[string]time.Time
}

// NewExchanger is the constructor for the Google authorization-code exchanger.
func NewExchanger(cfg *config.Config, verifier service.OAuthVerifier, logger *slog.Logger) service.OAuthExchanger {
	oauthCfg := &oauth2.Config{Endpoint: googleoauth.Endpoint}
	if cfg.GoogleOAuth != nil {
		oauthCfg.ClientID = cfg.GoogleOAuth.ClientID
		oauthCfg.ClientSecret = cfg.GoogleOAuth.ClientSecret
		oauthCfg.RedirectURL = cfg.GoogleOAuth.RedirectURI
	}
	oauthCfg.Scopes = []string{"openid", "email", "profile"}

	return &exchanger{
		oauthConfig: oauthCfg,
		verifier:    verifier,
		logger:      logger,
		stateStore:  make(map[string]time.Time),
	}
}

// NewState mints a cryptographically random state nonce and remembers it.
func (e *exchanger) NewState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	state := hex.EncodeToString(bytes)

	e.stateMutex.Lock()
	defer e.stateMutex.Unlock()

	e.stateStore[state] = time.Now().Add(stateTTL)
	e.cleanupExpiredStates()

	return state
}

// ConsumeState validates and burns a callback state nonce.
func (e *exchanger) ConsumeState(state string) bool {
	e.stateMutex.Lock()
	defer e.stateMutex.Unlock()

	expiry, ok := e.stateStore[state]
	if !ok {
		return false
	}
	delete(e.stateStore, state)

	return time.Now().Before(expiry)
}

// cleanupExpiredStates removes expired nonces. Caller holds stateMutex.
func (e *exchanger) cleanupExpiredStates() {
	now := time.Now()
	for state, expiry := range e.stateStore {
		if now.After(expiry) {
			delete(e.stateStore, state)
		}
	}
}

// AuthorizationURL builds the Google consent URL for the given state.
func (e *exchanger) AuthorizationURL(state string) string {
	return e.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
}

// ExchangeCode swaps a one-time authorization code for tokens at Google's
// token endpoint, then verifies the returned ID token.
func (e *exchanger) ExchangeCode(ctx context.Context, code string) (*service.OAuthProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := e.oauthConfig.Exchange(ctx, code)
	if err != nil {
		e.logger.Warn("Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrExchangeFailed.WrapMessage("token endpoint exchange failed")
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, domainerrors.ErrExchangeFailed.WrapMessage("no id_token in token endpoint response")
	}

	return e.verifier.VerifyIDToken(ctx, idToken)
}
