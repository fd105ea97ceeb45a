package entity

import (
	"time"

	"github.com/google/uuid"
)

// Storage is a physical place (warehouse, cellar, attic) where boxes live.
type Storage struct {
	ID        uuid.UUID // Unique identifier, assigned by the store at creation.
	Name      string    // Human-readable label, required.
	Address   string    // Free-form postal address, optional.
	OwnerID   uuid.UUID // The user who owns this storage.
	CreatedAt time.Time
	UpdatedAt time.Time
}
