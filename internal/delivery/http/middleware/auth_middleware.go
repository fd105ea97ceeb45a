package middleware

import (
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

const claimsContextKey = "sessionClaims"

// AuthMiddleware gates routes behind the session cookie. Verification is
// local signature checking; the store is never consulted, so claims can be
// stale for at most the token TTL.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session cookie and attaches the claims to the
// echo context. The downstream handler never runs on a missing or bad token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Verify(cookie.Value)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireAdmin composes after Authenticate and trusts the role claim.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}
		if claims.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// ClaimsFrom returns the session claims Authenticate stored on the context.
func ClaimsFrom(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(*service.SessionClaims)

	return claims, ok
}
