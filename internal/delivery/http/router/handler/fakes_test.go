package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"scanbox/config"
	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/validator"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	return string(body)
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Auth = &config.AuthConfig{CookieSameSite: "lax"}
	cfg.Frontend = &config.FrontendConfig{BaseURL: "https://app.example.com"}

	return cfg
}

// validSessionToken is the only token fakeTokenService accepts.
const validSessionToken = "valid-session-token"

type fakeTokenService struct {
	claims service.SessionClaims
}

func (f *fakeTokenService) Issue(claims service.SessionClaims) (string, error) {
	return validSessionToken, nil
}

func (f *fakeTokenService) Verify(token string) (*service.SessionClaims, error) {
	if token != validSessionToken {
		return nil, domainerrors.ErrInvalidToken
	}
	claims := f.claims

	return &claims, nil
}

func (f *fakeTokenService) SessionTTL() time.Duration {
	return 7 * 24 * time.Hour
}

type fakeAuthUsecase struct {
	signupOut   *usecase.SessionOutput
	signupErr   error
	loginOut    *usecase.SessionOutput
	loginErr    error
	googleOut   *usecase.SessionOutput
	googleErr   error
	redirectURL string
	redirectErr error
	callbackOut *usecase.SessionOutput
	callbackErr error
	currentUser *entity.User
	currentErr  error
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	return f.signupOut, f.signupErr
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeAuthUsecase) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.SessionOutput, error) {
	return f.googleOut, f.googleErr
}

func (f *fakeAuthUsecase) GoogleRedirectURL(ctx context.Context) (string, error) {
	return f.redirectURL, f.redirectErr
}

func (f *fakeAuthUsecase) GoogleCallback(ctx context.Context, state, code string) (*usecase.SessionOutput, error) {
	return f.callbackOut, f.callbackErr
}

func (f *fakeAuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return f.currentUser, f.currentErr
}

type fakeUserUsecase struct {
	users      []*entity.User
	user       *entity.User
	err        error
	lastInput  *usecase.UpdateUserInput
	lastTarget uuid.UUID
}

func (f *fakeUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return f.users, f.err
}

func (f *fakeUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeUserUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return f.user, f.err
}

func (f *fakeUserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	f.lastTarget = id
	f.lastInput = input

	return f.user, f.err
}

func (f *fakeUserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func (f *fakeUserUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	f.lastTarget = id

	return f.user, f.err
}

type fakeLabelUsecase struct {
	png []byte
	err error
}

func (f *fakeLabelUsecase) BoxLabel(ctx context.Context, boxID uuid.UUID) ([]byte, error) {
	return f.png, f.err
}

func (f *fakeLabelUsecase) StorageLabel(ctx context.Context, storageID uuid.UUID) ([]byte, error) {
	return f.png, f.err
}

// newTestEcho builds an echo instance wired like the production server:
// validator mounted and taxonomy errors translated by the error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}
