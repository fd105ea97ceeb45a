// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"scanbox/config"
	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/response"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles local account creation.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, out.Token)

	return response.Success(c, http.StatusCreated, toUserResponse(out.User), "Compte créé")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles local password authentication.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, out.Token)

	return response.Success(c, http.StatusOK, toUserResponse(out.User), "Connexion réussie")
}

type googleLoginRequest struct {
	// Token carries the ID token or the one-time authorization code,
	// depending on Flow.
	Token string `json:"token" validate:"required"`
	Flow  string `json:"flow"`
}

// GoogleLogin authenticates with a Google credential submitted by the client.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{
		Credential: req.Token,
		Flow:       req.Flow,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, out.Token)

	return response.Success(c, http.StatusOK, toUserResponse(out.User), "Connexion Google réussie")
}

// GoogleRedirect sends the browser to the Google consent screen.
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	consentURL, err := h.uc.GoogleRedirectURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, consentURL)
}

// GoogleCallback terminates the authorization-code flow. The browser lands
// here from Google, so failures redirect to the frontend instead of
// rendering JSON.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	out, err := h.uc.GoogleCallback(c.Request().Context(), state, code)
	if err != nil {
		h.logger.Warn("Google callback failed", slog.String("error", err.Error()))

		return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL("error"))
	}

	setSessionCookie(c, h.cfg, out.Token)

	return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL(""))
}

// Logout clears the session cookie unconditionally.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Déconnecté"}, "Déconnexion réussie")
}

// Me returns the authenticated user, re-fetched from the store for freshness.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

func (h *AuthHandler) frontendURL(authResult string) string {
	base := "/"
	if h.cfg.Frontend != nil && h.cfg.Frontend.BaseURL != "" {
		base = h.cfg.Frontend.BaseURL
	}
	if authResult == "" {
		return base
	}

	return base + "?auth=" + url.QueryEscape(authResult)
}
