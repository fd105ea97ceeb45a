package postgres

import (
	"context"

	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/repository"
	"scanbox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storageRepository implements the repository.StorageRepository interface.
type storageRepository struct {
	db *gorm.DB
}

// NewStorageRepository is the constructor for storageRepository.
func NewStorageRepository(db *gorm.DB) repository.StorageRepository {
	return &storageRepository{db: db}
}

// FindByID retrieves a storage by primary key.
func (repo *storageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Storage, error) {
	var storageM model.StorageModel
	if err := repo.db.WithContext(ctx).First(&storageM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStorageNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toStorageDomain(&storageM), nil
}

// FindAll lists storages newest first, optionally restricted to one owner.
func (repo *storageRepository) FindAll(ctx context.Context, ownerID *uuid.UUID) ([]*entity.Storage, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var storageModels []model.StorageModel
	if err := query.Find(&storageModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	storages := make([]*entity.Storage, 0, len(storageModels))
	for i := range storageModels {
		storages = append(storages, toStorageDomain(&storageModels[i]))
	}

	return storages, nil
}

// Create persists a new storage record.
func (repo *storageRepository) Create(ctx context.Context, storage *entity.Storage) error {
	storageM := fromStorageDomain(storage)

	if err := repo.db.WithContext(ctx).Create(storageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("storage owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create storage")
	}

	storage.ID = storageM.ID
	storage.CreatedAt = storageM.CreatedAt
	storage.UpdatedAt = storageM.UpdatedAt

	return nil
}

// Update saves the storage record.
func (repo *storageRepository) Update(ctx context.Context, storage *entity.Storage) error {
	result := repo.db.WithContext(ctx).Model(&model.StorageModel{}).
		Where("id = ?", storage.ID).
		Updates(map[string]any{
			"name":    storage.Name,
			"address": storage.Address,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update storage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStorageNotFound
	}

	return nil
}

// Delete removes a storage by ID.
func (repo *storageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StorageModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrStorageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStorageDomain(data *model.StorageModel) *entity.Storage {
	if data == nil {
		return nil
	}

	return &entity.Storage{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStorageDomain(data *entity.Storage) *model.StorageModel {
	if data == nil {
		return nil
	}

	return &model.StorageModel{
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
		OwnerID: data.OwnerID,
	}
}
