package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"scanbox/config"
	"scanbox/internal/domain/entity"
	"scanbox/internal/domain/service"
)

// sessionClaims is the JWT claim set carried inside the session cookie.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: cfg.SessionTTL(),
	}, nil
}

// Issue creates a signed session token embedding the identity claims with an
// absolute expiry of now + SessionTTL.
func (s *jwtService) Issue(claims service.SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: claims.Email,
		Role:  claims.Role.String(),
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token signature, signing algorithm and expiry, and
// returns the embedded claims.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but the configured HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	return &service.SessionClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   entity.Role(claims.Role),
		Name:   claims.Name,
	}, nil
}

// SessionTTL returns the configured session token lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}
