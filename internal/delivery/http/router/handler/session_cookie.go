package handler

import (
	"net/http"
	"strings"

	"scanbox/config"
	"scanbox/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// setSessionCookie writes the signed session token as an HttpOnly cookie.
// Max-Age mirrors the token TTL so cookie and token expire together.
func setSessionCookie(c echo.Context, cfg *config.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: cookieSameSite(cfg),
	})
}

// clearSessionCookie expires the session cookie. Idempotent.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: cookieSameSite(cfg),
	})
}

func cookieSameSite(cfg *config.Config) http.SameSite {
	mode := ""
	if cfg.Auth != nil {
		mode = cfg.Auth.CookieSameSite
	}

	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
