package usecase

import (
	"context"

	"scanbox/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBoxInput defines the data required to create a box. A nil StorageID
// leaves the box unassigned.
type CreateBoxInput struct {
	Name        string
	Description string
	StorageID   *uuid.UUID
	OwnerID     uuid.UUID
}

// UpdateBoxInput is the box patch whitelist. Nil fields stay unchanged.
type UpdateBoxInput struct {
	Name        *string
	Description *string
	StorageID   *uuid.UUID
}

// BoxUsecase defines the box business operations.
type BoxUsecase interface {
	// ListBoxes lists boxes newest first, optionally one storage's.
	ListBoxes(ctx context.Context, storageID *uuid.UUID) ([]*entity.Box, error)
	GetBox(ctx context.Context, id uuid.UUID) (*entity.Box, error)
	// GetBoxByLabel resolves a scanned label short code to its box.
	GetBoxByLabel(ctx context.Context, code string) (*entity.Box, error)
	CreateBox(ctx context.Context, input *CreateBoxInput) (*entity.Box, error)
	UpdateBox(ctx context.Context, id uuid.UUID, input *UpdateBoxInput) (*entity.Box, error)
	DeleteBox(ctx context.Context, id uuid.UUID) error
}
