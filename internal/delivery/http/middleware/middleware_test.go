package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scanbox/config"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.SessionClaims
}

func (s *stubTokenService) Issue(claims service.SessionClaims) (string, error) {
	return "stub", nil
}

func (s *stubTokenService) Verify(token string) (*service.SessionClaims, error) {
	if token != "good" {
		return nil, domainerrors.ErrInvalidToken
	}

	return s.claims, nil
}

func (s *stubTokenService) SessionTTL() time.Duration {
	return time.Hour
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthenticate(t *testing.T) {
	tokens := &stubTokenService{claims: &service.SessionClaims{
		UserID: uuid.New(),
		Role:   entity.RoleUser,
	}}
	e := newEcho()
	e.GET("/guarded", okHandler, NewAuthMiddleware(tokens).Authenticate)

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	newGuarded := func(role entity.Role) *echo.Echo {
		tokens := &stubTokenService{claims: &service.SessionClaims{
			UserID: uuid.New(),
			Role:   role,
		}}
		am := NewAuthMiddleware(tokens)
		e := newEcho()
		e.GET("/admin", okHandler, am.Authenticate, am.RequireAdmin)

		return e
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})

	rec := httptest.NewRecorder()
	newGuarded(entity.RoleAdmin).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	newGuarded(entity.RoleUser).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestLoginRateLimiter(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{LoginRateLimit: 2}}
	e := newEcho()
	e.POST("/login", okHandler, NewLoginRateLimiter(cfg))

	statuses := make([]int, 0, 4)
	for range 4 {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	// Burst equals the per-minute budget, then the limiter kicks in.
	require.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
	assert.Equal(t, http.StatusTooManyRequests, statuses[3])
}
