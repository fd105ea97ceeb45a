package service

import (
	"time"

	"scanbox/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims are the identity attributes embedded in a session token.
// Role is trusted as-is by authorization checks, so a claim can be stale
// relative to the store for at most the token TTL.
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
	Name   string
}

// TokenService issues and verifies signed, time-limited session tokens.
// It is stateless: expiry is enforced at verification time, never by a
// server-side revocation list.
type TokenService interface {
	// Issue produces a signed token embedding claims with an absolute expiry
	// of now + SessionTTL.
	Issue(claims SessionClaims) (string, error)
	// Verify fails on a bad signature, a foreign signing algorithm, a
	// malformed token, or an elapsed expiry.
	Verify(token string) (*SessionClaims, error)
	// SessionTTL returns the configured token lifetime (cookie Max-Age).
	SessionTTL() time.Duration
}
