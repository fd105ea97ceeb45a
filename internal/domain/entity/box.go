package entity

import (
	"time"

	"github.com/google/uuid"
)

// Box is a single tracked container. Its LabelCode is the opaque short code
// printed inside the QR label, so relabeling a box never requires reprinting
// every label in the storage.
type Box struct {
	ID          uuid.UUID  // Unique identifier, assigned by the store at creation.
	Name        string     // Human-readable label, required.
	Description string     // Free-form contents description, optional.
	StorageID   *uuid.UUID // The storage currently holding this box, nil when unassigned.
	OwnerID     uuid.UUID  // The user who owns this box.
	LabelCode   string     // Opaque unique short code embedded in printed QR labels.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
