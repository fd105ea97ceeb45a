package repository

import (
	"context"

	"scanbox/internal/domain/entity"
	"scanbox/internal/errors"

	"github.com/google/uuid"
)

// ErrStorageNotFound is returned when no storage matches the lookup key.
var ErrStorageNotFound = errors.New("storage not found")

// StorageRepository defines the contract for storage (warehouse) persistence.
type StorageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Storage, error)
	// FindAll lists storages newest first. A non-nil ownerID restricts the
	// result to a single owner.
	FindAll(ctx context.Context, ownerID *uuid.UUID) ([]*entity.Storage, error)
	Create(ctx context.Context, storage *entity.Storage) error
	Update(ctx context.Context, storage *entity.Storage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
