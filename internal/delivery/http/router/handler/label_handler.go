package handler

import (
	"net/http"

	"scanbox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LabelHandler serves printable QR labels as PNG images.
type LabelHandler struct {
	uc usecase.LabelUsecase
}

// NewLabelHandler is the constructor for LabelHandler, injected by Fx.
func NewLabelHandler(uc usecase.LabelUsecase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// BoxLabel returns the QR label PNG for a box.
func (h *LabelHandler) BoxLabel(c echo.Context) error {
	boxID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.BoxLabel(c.Request().Context(), boxID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// StorageLabel returns the QR label PNG for a storage.
func (h *LabelHandler) StorageLabel(c echo.Context) error {
	storageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.StorageLabel(c.Request().Context(), storageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
