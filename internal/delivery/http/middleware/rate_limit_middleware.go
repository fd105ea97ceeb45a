package middleware

import (
	"time"

	"scanbox/config"
	domainerrors "scanbox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultLoginRateLimit = 5 // attempts per minute per client IP

// NewLoginRateLimiter builds the in-memory per-IP limiter mounted on the
// login route. The budget is expressed in attempts per minute.
func NewLoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := defaultLoginRateLimit
	if cfg.Auth != nil && cfg.Auth.LoginRateLimit > 0 {
		limit = cfg.Auth.LoginRateLimit
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(limit) / 60.0),
		Burst:     limit,
		ExpiresIn: 3 * time.Minute,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrRateLimited
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
