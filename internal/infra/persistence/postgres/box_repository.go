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

// boxRepository implements the repository.BoxRepository interface.
type boxRepository struct {
	db *gorm.DB
}

// NewBoxRepository is the constructor for boxRepository.
func NewBoxRepository(db *gorm.DB) repository.BoxRepository {
	return &boxRepository{db: db}
}

// FindByID retrieves a box by primary key.
func (repo *boxRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Box, error) {
	var boxM model.BoxModel
	if err := repo.db.WithContext(ctx).First(&boxM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBoxDomain(&boxM), nil
}

// FindByLabelCode resolves a scanned label code to its box.
func (repo *boxRepository) FindByLabelCode(ctx context.Context, code string) (*entity.Box, error) {
	var boxM model.BoxModel
	if err := repo.db.WithContext(ctx).First(&boxM, "label_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBoxDomain(&boxM), nil
}

// FindAll lists boxes newest first, optionally restricted to one storage.
func (repo *boxRepository) FindAll(ctx context.Context, storageID *uuid.UUID) ([]*entity.Box, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if storageID != nil {
		query = query.Where("storage_id = ?", *storageID)
	}

	var boxModels []model.BoxModel
	if err := query.Find(&boxModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	boxes := make([]*entity.Box, 0, len(boxModels))
	for i := range boxModels {
		boxes = append(boxes, toBoxDomain(&boxModels[i]))
	}

	return boxes, nil
}

// Create persists a new box record.
func (repo *boxRepository) Create(ctx context.Context, box *entity.Box) error {
	boxM := fromBoxDomain(box)

	if err := repo.db.WithContext(ctx).Create(boxM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLabelInvalid.WrapMessage("label code already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStorageNotFound.WrapMessage("box references a missing storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create box")
	}

	box.ID = boxM.ID
	box.CreatedAt = boxM.CreatedAt
	box.UpdatedAt = boxM.UpdatedAt

	return nil
}

// Update saves the box record.
func (repo *boxRepository) Update(ctx context.Context, box *entity.Box) error {
	result := repo.db.WithContext(ctx).Model(&model.BoxModel{}).
		Where("id = ?", box.ID).
		Updates(map[string]any{
			"name":        box.Name,
			"description": box.Description,
			"storage_id":  box.StorageID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrStorageNotFound.WrapMessage("box references a missing storage")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update box")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBoxNotFound
	}

	return nil
}

// Delete removes a box by ID.
func (repo *boxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BoxModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBoxNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBoxDomain(data *model.BoxModel) *entity.Box {
	if data == nil {
		return nil
	}

	return &entity.Box{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		StorageID:   data.StorageID,
		OwnerID:     data.OwnerID,
		LabelCode:   data.LabelCode,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBoxDomain(data *entity.Box) *model.BoxModel {
	if data == nil {
		return nil
	}

	return &model.BoxModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		StorageID:   data.StorageID,
		OwnerID:     data.OwnerID,
		LabelCode:   data.LabelCode,
	}
}
