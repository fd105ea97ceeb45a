package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "scanbox/internal/delivery/context"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/repository"
	"scanbox/internal/domain/service"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storageService implements the StorageUsecase interface.
type storageService struct {
	storageRepo repository.StorageRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// StorageServiceParams holds dependencies for StorageService, injected by Fx.
type StorageServiceParams struct {
	fx.In

	StorageRepo repository.StorageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewStorageService is the constructor for storageService.
func NewStorageService(params StorageServiceParams) usecase.StorageUsecase {
	return &storageService{
		storageRepo: params.StorageRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *storageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStorages lists storages newest first, optionally one owner's.
func (srv *storageService) ListStorages(ctx context.Context, ownerID *uuid.UUID) ([]*entity.Storage, error) {
	storages, err := srv.storageRepo.FindAll(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storages")
	}

	return storages, nil
}

// GetStorage fetches one storage by ID.
func (srv *storageService) GetStorage(ctx context.Context, id uuid.UUID) (*entity.Storage, error) {
	storage, err := srv.storageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStorageNotFound) {
			return nil, domainerrors.ErrStorageNotFound.WrapMessage("no storage with this id")
		}

		return nil, errors.Wrap(err, "failed to find storage by id")
	}

	return storage, nil
}

// CreateStorage persists a new storage and emits a created event.
func (srv *storageService) CreateStorage(ctx context.Context, input *usecase.CreateStorageInput) (*entity.Storage, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("storage name is required")
	}

	storage := &entity.Storage{
		Name:    name,
		Address: input.Address,
		OwnerID: input.OwnerID,
	}

	if err := srv.storageRepo.Create(ctx, storage); err != nil {
		srv.log(ctx).Warn("Storage creation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create storage")
	}
	srv.log(ctx).Debug("Storage created", slog.Any("storageID", storage.ID))

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindStorage, eventActionCreated, storage.ID, storage.OwnerID)

	return storage, nil
}

// UpdateStorage applies the patch whitelist and emits an updated event.
func (srv *storageService) UpdateStorage(ctx context.Context, id uuid.UUID, input *usecase.UpdateStorageInput) (*entity.Storage, error) {
	storage, err := srv.GetStorage(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("storage name cannot be empty")
		}
		storage.Name = name
	}
	if input.Address != nil {
		storage.Address = *input.Address
	}

	if err := srv.storageRepo.Update(ctx, storage); err != nil {
		if errors.Is(err, repository.ErrStorageNotFound) {
			return nil, domainerrors.ErrStorageNotFound.WrapMessage("storage vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update storage")
	}

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindStorage, eventActionUpdated, storage.ID, storage.OwnerID)

	return storage, nil
}

// DeleteStorage removes a storage and emits a deleted event.
func (srv *storageService) DeleteStorage(ctx context.Context, id uuid.UUID) error {
	storage, err := srv.GetStorage(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.storageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStorageNotFound) {
			return domainerrors.ErrStorageNotFound.WrapMessage("storage vanished during delete")
		}

		return errors.Wrap(err, "failed to delete storage")
	}
	srv.log(ctx).Debug("Storage deleted", slog.Any("storageID", id))

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindStorage, eventActionDeleted, id, storage.OwnerID)

	return nil
}
