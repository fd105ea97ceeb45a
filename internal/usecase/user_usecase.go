package usecase

import (
	"context"

	"scanbox/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data an admin provides to create a local user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput is the admin update whitelist. Nil fields stay unchanged;
// this is the only path that may change Role.
type UpdateUserInput struct {
	Name          *string
	Email         *string
	Role          *entity.Role
	Picture       *string
	Password      *string
	PrintSettings map[string]any
}

// UpdateProfileInput is the self-service whitelist: never Role, never Provider.
type UpdateProfileInput struct {
	Name          *string
	Picture       *string
	Password      *string
	PrintSettings map[string]any
}

// UserUsecase defines the user management business operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	// UpdateProfile applies the self-service whitelist to the caller's account.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
