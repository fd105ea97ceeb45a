// Package repository defines the persistence contracts the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"scanbox/internal/domain/entity"
	"scanbox/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
