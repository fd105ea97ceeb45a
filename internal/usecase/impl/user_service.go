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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers lists every account, newest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser fetches one account by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user with this id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByEmail fetches one account by email.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user with this email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// CreateUser provisions a local account on behalf of an admin.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Admin creating user", slog.String("email", email))

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + role.String())
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during user creation")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = entity.DefaultUserName
	}

	var createdUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("user creation failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newUser := &entity.User{
			Email:        email,
			Name:         name,
			PasswordHash: hashedPassword,
			Provider:     entity.ProviderLocal,
			Role:         role,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		createdUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User creation failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}
	srv.log(ctx).Debug("User created", slog.Any("userID", createdUser.ID))

	return createdUser, nil
}

// UpdateUser applies the admin whitelist to an account. Only this path may
// change the role.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Admin updating user", slog.Any("userID", id))

	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + input.Role.String())
	}

	hashedPassword, err := srv.prepareNewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var updatedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no user with this id")
			}

			return errors.Wrap(findErr, "failed to load user for update")
		}

		if input.Email != nil {
			newEmail := normalizeEmail(*input.Email)
			if newEmail != user.Email {
				if err := srv.ensureEmailAvailable(ctx, userRepo, newEmail); err != nil {
					return err
				}
				user.Email = newEmail
			}
		}
		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Picture != nil {
			user.Picture = *input.Picture
		}
		if input.PrintSettings != nil {
			user.PrintSettings = input.PrintSettings
		}
		if hashedPassword != "" {
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updatedUser, nil
}

// DeleteUser removes an account.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Admin deleting user", slog.Any("userID", id))

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no user with this id")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// UpdateProfile applies the self-service whitelist: never role, never provider.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("User updating own profile", slog.Any("userID", userID))

	hashedPassword, err := srv.prepareNewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var updatedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("session user no longer exists")
			}

			return errors.Wrap(findErr, "failed to load user for profile update")
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Picture != nil {
			user.Picture = *input.Picture
		}
		if input.PrintSettings != nil {
			user.PrintSettings = input.PrintSettings
		}
		if hashedPassword != "" {
			user.PasswordHash = hashedPassword
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updatedUser, nil
}

// prepareNewPassword validates and hashes a password change request.
// An absent or empty password means "leave unchanged".
func (srv *userService) prepareNewPassword(password *string) (string, error) {
	if password == nil || *password == "" {
		return "", nil
	}

	if err := srv.hasher.ValidatePasswordStrength(*password); err != nil {
		return "", err
	}

	hashed, err := srv.hasher.Hash(*password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash new password")
	}

	return hashed, nil
}

func (srv *userService) ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailTaken.WrapMessage("email change conflicts with another account")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}
