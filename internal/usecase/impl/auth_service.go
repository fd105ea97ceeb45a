// Package impl contains the implementation of the application's business logic.
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.OAuthVerifier
	exchanger    service.OAuthExchanger
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.OAuthVerifier
	Exchanger    service.OAuthExchanger
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		exchanger:    params.Exchanger,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a local account and opens a session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password rejected during signup", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction: bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
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
			return domainerrors.ErrEmailTaken.WrapMessage("signup failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newUser := &entity.User{
			Email:        email,
			Name:         name,
			PasswordHash: hashedPassword,
			Provider:     entity.ProviderLocal,
			Role:         entity.RoleUser,
		}

		// The unique email index is the authoritative guard: a concurrent
		// signup surfaces here as EmailTaken from the insert.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}
		createdUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}
	srv.log(ctx).Debug("Signup completed", slog.Any("userID", createdUser.ID))

	return srv.openSession(createdUser)
}

// Login checks local credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.IsLocal() {
		srv.log(ctx).Warn("Password login on OAuth account", slog.String("email", email), slog.String("provider", user.Provider.String()))

		return nil, domainerrors.ErrWrongProvider.WrapMessage("account has no local password")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return srv.openSession(user)
}

// GoogleLogin terminates either Google flow in a verified profile and opens
// a session for the matching account.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.SessionOutput, error) {
	flow := input.Flow
	if flow == "" {
		flow = usecase.FlowIDToken
	}

	var profile *service.OAuthProfile
	var err error

	switch flow {
	case usecase.FlowIDToken:
		profile, err = srv.verifier.VerifyIDToken(ctx, input.Credential)
	case usecase.FlowCode:
		profile, err = srv.exchanger.ExchangeCode(ctx, input.Credential)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown google login flow: " + flow)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve google credential")
	}

	return srv.loginWithProfile(ctx, profile)
}

// GoogleRedirectURL mints a state nonce and builds the consent URL.
func (srv *authService) GoogleRedirectURL(_ context.Context) (string, error) {
	state := srv.exchanger.NewState()

	return srv.exchanger.AuthorizationURL(state), nil
}

// GoogleCallback burns the state nonce, exchanges the code and opens a session.
func (srv *authService) GoogleCallback(ctx context.Context, state, code string) (*usecase.SessionOutput, error) {
	if !srv.exchanger.ConsumeState(state) {
		srv.log(ctx).Warn("Rejected google callback with unknown state")

		return nil, domainerrors.ErrInvalidCredential.WrapMessage("unknown or expired oauth state")
	}

	profile, err := srv.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange google callback code")
	}

	return srv.loginWithProfile(ctx, profile)
}

// CurrentUser re-reads the authenticated user from the store.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// loginWithProfile finds or creates the account matching a verified Google
// profile, re-syncing name, picture and provider but never role.
func (srv *authService) loginWithProfile(ctx context.Context, profile *service.OAuthProfile) (*usecase.SessionOutput, error) {
	email := normalizeEmail(profile.Email)

	var loggedInUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByEmail(ctx, email)
		if errors.Is(findErr, repository.ErrUserNotFound) {
			created, createErr := srv.createGoogleUser(ctx, userRepo, email, profile)
			if createErr != nil {
				return createErr
			}
			loggedInUser = created

			return nil
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user for google login")
		}

		synced, syncErr := srv.syncGoogleProfile(ctx, userRepo, user, profile)
		if syncErr != nil {
			return syncErr
		}
		loggedInUser = synced

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Google login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google login transaction")
	}

	return srv.openSession(loggedInUser)
}

// createGoogleUser provisions a fresh account from the verified profile.
func (srv *authService) createGoogleUser(ctx context.Context, userRepo repository.UserRepository, email string, profile *service.OAuthProfile) (*entity.User, error) {
	srv.log(ctx).Info("Google user not found, creating new account", slog.String("email", email))

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = entity.DefaultUserName
	}

	newUser := &entity.User{
		Email:    email,
		Name:     name,
		Provider: entity.ProviderGoogle,
		Role:     entity.RoleUser,
		Picture:  profile.Picture,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for google login")
	}

	return newUser, nil
}

// syncGoogleProfile refreshes the stored name, picture and provider from the
// latest verified profile. Role is deliberately left untouched.
func (srv *authService) syncGoogleProfile(ctx context.Context, userRepo repository.UserRepository, user *entity.User, profile *service.OAuthProfile) (*entity.User, error) {
	changed := false

	if name := strings.TrimSpace(profile.Name); name != "" && name != user.Name {
		user.Name = name
		changed = true
	}
	if profile.Picture != "" && profile.Picture != user.Picture {
		user.Picture = profile.Picture
		changed = true
	}
	if user.Provider != entity.ProviderGoogle {
		user.Provider = entity.ProviderGoogle
		changed = true
	}

	if !changed {
		return user, nil
	}

	srv.log(ctx).Debug("Re-syncing google profile", slog.Any("userID", user.ID))

	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to sync google profile")
	}

	return user, nil
}

// openSession issues the session token for the user.
func (srv *authService) openSession(user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(service.SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
