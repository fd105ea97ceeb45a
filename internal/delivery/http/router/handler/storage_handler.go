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

// StorageHandler holds dependencies for storage handlers.
type StorageHandler struct {
	uc     usecase.StorageUsecase
	logger *slog.Logger
}

// NewStorageHandler is the constructor for StorageHandler, injected by Fx.
func NewStorageHandler(uc usecase.StorageUsecase, logger *slog.Logger) *StorageHandler {
	return &StorageHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns storages, optionally filtered by owner.
func (h *StorageHandler) List(c echo.Context) error {
	var ownerID *uuid.UUID
	if raw := c.QueryParam("ownerId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid ownerId parameter")
		}
		ownerID = &parsed
	}

	storages, err := h.uc.ListStorages(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStorageResponses(storages), "")
}

// Get returns a single storage.
func (h *StorageHandler) Get(c echo.Context) error {
	storageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	storage, err := h.uc.GetStorage(c.Request().Context(), storageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStorageResponse(storage), "")
}

type createStorageRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

// Create registers a storage owned by the session user.
func (h *StorageHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createStorageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	storage, err := h.uc.CreateStorage(c.Request().Context(), &usecase.CreateStorageInput{
		Name:    req.Name,
		Address: req.Address,
		OwnerID: claims.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStorageResponse(storage), "Entrepôt créé")
}

type updateStorageRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Update applies the storage whitelist: name and address only.
func (h *StorageHandler) Update(c echo.Context) error {
	storageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStorageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide")
	}

	storage, err := h.uc.UpdateStorage(c.Request().Context(), storageID, &usecase.UpdateStorageInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStorageResponse(storage), "Entrepôt mis à jour")
}

// Delete removes a storage.
func (h *StorageHandler) Delete(c echo.Context) error {
	storageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStorage(c.Request().Context(), storageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": storageID.String()}, "Entrepôt supprimé")
}
