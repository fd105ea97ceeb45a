package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

// boxService implements the BoxUsecase interface.
type boxService struct {
	boxRepo     repository.BoxRepository
	storageRepo repository.StorageRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// BoxServiceParams holds dependencies for BoxService, injected by Fx.
type BoxServiceParams struct {
	fx.In

	BoxRepo     repository.BoxRepository
	StorageRepo repository.StorageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewBoxService is the constructor for boxService.
func NewBoxService(params BoxServiceParams) usecase.BoxUsecase {
	return &boxService{
		boxRepo:     params.BoxRepo,
		storageRepo: params.StorageRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *boxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBoxes lists boxes newest first, optionally one storage's.
func (srv *boxService) ListBoxes(ctx context.Context, storageID *uuid.UUID) ([]*entity.Box, error) {
	boxes, err := srv.boxRepo.FindAll(ctx, storageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list boxes")
	}

	return boxes, nil
}

// GetBox fetches one box by ID.
func (srv *boxService) GetBox(ctx context.Context, id uuid.UUID) (*entity.Box, error) {
	box, err := srv.boxRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound.WrapMessage("no box with this id")
		}

		return nil, errors.Wrap(err, "failed to find box by id")
	}

	return box, nil
}

// GetBoxByLabel resolves a scanned label short code to its box.
func (srv *boxService) GetBoxByLabel(ctx context.Context, code string) (*entity.Box, error) {
	box, err := srv.boxRepo.FindByLabelCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound.WrapMessage("no box with this label code")
		}

		return nil, errors.Wrap(err, "failed to find box by label code")
	}

	return box, nil
}

// CreateBox persists a new box with a fresh label code and emits a created event.
func (srv *boxService) CreateBox(ctx context.Context, input *usecase.CreateBoxInput) (*entity.Box, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("box name is required")
	}

	if input.StorageID != nil {
		if err := srv.ensureStorageExists(ctx, *input.StorageID); err != nil {
			return nil, err
		}
	}

	box := &entity.Box{
		Name:        name,
		Description: input.Description,
		StorageID:   input.StorageID,
		OwnerID:     input.OwnerID,
		LabelCode:   newLabelCode(),
	}

	if err := srv.boxRepo.Create(ctx, box); err != nil {
		srv.log(ctx).Warn("Box creation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create box")
	}
	srv.log(ctx).Debug("Box created", slog.Any("boxID", box.ID), slog.String("labelCode", box.LabelCode))

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindBox, eventActionCreated, box.ID, box.OwnerID)

	return box, nil
}

// UpdateBox applies the patch whitelist and emits an updated event. Moving a
// box to a missing storage fails StorageNotFound.
func (srv *boxService) UpdateBox(ctx context.Context, id uuid.UUID, input *usecase.UpdateBoxInput) (*entity.Box, error) {
	box, err := srv.GetBox(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("box name cannot be empty")
		}
		box.Name = name
	}
	if input.Description != nil {
		box.Description = *input.Description
	}
	if input.StorageID != nil {
		if err := srv.ensureStorageExists(ctx, *input.StorageID); err != nil {
			return nil, err
		}
		box.StorageID = input.StorageID
	}

	if err := srv.boxRepo.Update(ctx, box); err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound.WrapMessage("box vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update box")
	}

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindBox, eventActionUpdated, box.ID, box.OwnerID)

	return box, nil
}

// DeleteBox removes a box and emits a deleted event.
func (srv *boxService) DeleteBox(ctx context.Context, id uuid.UUID) error {
	box, err := srv.GetBox(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.boxRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return domainerrors.ErrBoxNotFound.WrapMessage("box vanished during delete")
		}

		return errors.Wrap(err, "failed to delete box")
	}
	srv.log(ctx).Debug("Box deleted", slog.Any("boxID", id))

	publishInventoryEvent(ctx, srv.publisher, srv.log(ctx), eventKindBox, eventActionDeleted, id, box.OwnerID)

	return nil
}

func (srv *boxService) ensureStorageExists(ctx context.Context, storageID uuid.UUID) error {
	if _, err := srv.storageRepo.FindByID(ctx, storageID); err != nil {
		if errors.Is(err, repository.ErrStorageNotFound) {
			return domainerrors.ErrStorageNotFound.WrapMessage("target storage does not exist")
		}

		return errors.Wrap(err, "failed to check target storage")
	}

	return nil
}

// newLabelCode mints the opaque short code printed on a box label.
func newLabelCode() string {
	raw := make([]byte, 4)
	rand.Read(raw)

	return "BX-" + strings.ToUpper(hex.EncodeToString(raw))
}
