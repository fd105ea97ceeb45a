package handler

import (
	"log/slog"
	"net/http"

	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/response"
	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all accounts, newest first.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}

// GetByID returns a single account.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// GetByEmail returns a single account looked up by email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// Create handles admin creation of a local account.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "Utilisateur créé")
}

type updateUserRequest struct {
	Name          *string        `json:"name"`
	Email         *string        `json:"email"`
	Role          *string        `json:"role"`
	Picture       *string        `json:"picture"`
	Password      *string        `json:"password"`
	PrintSettings map[string]any `json:"printSettings"`
}

// Update applies the admin whitelist to an account. This is the only route
// that may change a role.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}

	input := &usecase.UpdateUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Picture:       req.Picture,
		Password:      req.Password,
		PrintSettings: req.PrintSettings,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Utilisateur mis à jour")
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": userID.String()}, "Utilisateur supprimé")
}

type updateProfileRequest struct {
	Name          *string        `json:"name"`
	Picture       *string        `json:"picture"`
	Password      *string        `json:"password"`
	PrintSettings map[string]any `json:"printSettings"`
}

// UpdateMe applies the self-service whitelist to the session user. Role and
// provider are not bindable here.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), claims.UserID, &usecase.UpdateProfileInput{
		Name:          req.Name,
		Picture:       req.Picture,
		Password:      req.Password,
		PrintSettings: req.PrintSettings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profil mis à jour")
}

// parseIDParam parses a UUID path parameter, mapping malformed values to the
// 400 taxonomy error.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}
