package handler

import (
	"log/slog"
	"net/http"

	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/response"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BoxHandler holds dependencies for box handlers.
type BoxHandler struct {
	uc     usecase.BoxUsecase
	logger *slog.Logger
}

// NewBoxHandler is the constructor for BoxHandler, injected by Fx.
func NewBoxHandler(uc usecase.BoxUsecase, logger *slog.Logger) *BoxHandler {
	return &BoxHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns boxes, optionally filtered by storage.
func (h *BoxHandler) List(c echo.Context) error {
	var storageID *uuid.UUID
	if raw := c.QueryParam("storageId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid storageId parameter")
		}
		storageID = &parsed
	}

	boxes, err := h.uc.ListBoxes(c.Request().Context(), storageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBoxResponses(boxes), "")
}

// Get returns a single box.
func (h *BoxHandler) Get(c echo.Context) error {
	boxID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	box, err := h.uc.GetBox(c.Request().Context(), boxID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBoxResponse(box), "")
}

// GetByLabel resolves a box from its printed label code, used by the scanner.
func (h *BoxHandler) GetByLabel(c echo.Context) error {
	box, err := h.uc.GetBoxByLabel(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBoxResponse(box), "")
}

type createBoxRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	StorageID   *string `json:"storageId"`
}

// Create registers a box owned by the session user, minting its label code.
func (h *BoxHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createBoxRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateBoxInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     claims.UserID,
	}
	if req.StorageID != nil && *req.StorageID != "" {
		storageID, err := uuid.Parse(*req.StorageID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid storageId field")
		}
		input.StorageID = &storageID
	}

	box, err := h.uc.CreateBox(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBoxResponse(box), "Boîte créée")
}

type updateBoxRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StorageID   *string `json:"storageId"`
}

// Update applies the box whitelist: name, description and storage assignment.
func (h *BoxHandler) Update(c echo.Context) error {
	boxID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateBoxRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}

	input := &usecase.UpdateBoxInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.StorageID != nil {
		storageID, err := uuid.Parse(*req.StorageID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid storageId field")
		}
		input.StorageID = &storageID
	}

	box, err := h.uc.UpdateBox(c.Request().Context(), boxID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBoxResponse(box), "Boîte mise à jour")
}

// Delete removes a box.
func (h *BoxHandler) Delete(c echo.Context) error {
	boxID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBox(c.Request().Context(), boxID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": boxID.String()}, "Boîte supprimée")
}
