package usecase

import (
	"context"

	"scanbox/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStorageInput defines the data required to create a storage.
type CreateStorageInput struct {
	Name    string
	Address string
	OwnerID uuid.UUID
}

// UpdateStorageInput is the storage patch whitelist. Nil fields stay unchanged.
type UpdateStorageInput struct {
	Name    *string
	Address *string
}

// StorageUsecase defines the storage (warehouse) business operations.
type StorageUsecase interface {
	// ListStorages lists storages newest first, optionally one owner's.
	ListStorages(ctx context.Context, ownerID *uuid.UUID) ([]*entity.Storage, error)
	GetStorage(ctx context.Context, id uuid.UUID) (*entity.Storage, error)
	CreateStorage(ctx context.Context, input *CreateStorageInput) (*entity.Storage, error)
	UpdateStorage(ctx context.Context, id uuid.UUID, input *UpdateStorageInput) (*entity.Storage, error)
	DeleteStorage(ctx context.Context, id uuid.UUID) error
}
