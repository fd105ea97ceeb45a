package repository

import (
	"context"

	"scanbox/internal/domain/entity"
	"scanbox/internal/errors"

	"github.com/google/uuid"
)

// ErrBoxNotFound is returned when no box matches the lookup key.
var ErrBoxNotFound = errors.New("box not found")

// BoxRepository defines the contract for box persistence.
type BoxRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Box, error)
	FindByLabelCode(ctx context.Context, code string) (*entity.Box, error)
	// FindAll lists boxes newest first, optionally restricted to one storage.
	FindAll(ctx context.Context, storageID *uuid.UUID) ([]*entity.Box, error)
	Create(ctx context.Context, box *entity.Box) error
	Update(ctx context.Context, box *entity.Box) error
	Delete(ctx context.Context, id uuid.UUID) error
}
