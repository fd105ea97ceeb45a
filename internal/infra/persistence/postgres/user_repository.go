package postgres

import (
	"context"
	"encoding/json"

	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/repository"
	"scanbox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindAll lists every user, newest first.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

// Create persists a new user record. A unique-constraint violation on the
// email column surfaces as ErrEmailTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate generated values back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves the full user record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":          userM.Email,
			"name":           userM.Name,
			"password_hash":  userM.PasswordHash,
			"provider":       userM.Provider,
			"role":           userM.Role,
			"picture":        userM.Picture,
			"print_settings": userM.PrintSettings,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var printSettings map[string]any
	if len(data.PrintSettings) > 0 {
		// Settings written by this repository always unmarshal; ignore
		// malformed rows rather than failing the whole read.
		_ = json.Unmarshal(data.PrintSettings, &printSettings)
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		PasswordHash:  data.PasswordHash,
		Provider:      entity.Provider(data.Provider),
		Role:          entity.Role(data.Role),
		Picture:       data.Picture,
		PrintSettings: printSettings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) (*model.UserModel, error) {
	if data == nil {
		return nil, nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Provider:     data.Provider.String(),
		Role:         data.Role.String(),
		Picture:      data.Picture,
	}

	if data.PrintSettings != nil {
		raw, err := json.Marshal(data.PrintSettings)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode print settings")
		}
		userM.PrintSettings = raw
	}

	return userM, nil
}
