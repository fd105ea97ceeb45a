package impl

import (
	"context"
	"log/slog"

	deliverycontext "scanbox/internal/delivery/context"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/repository"
	"scanbox/internal/domain/service"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// labelService implements the LabelUsecase interface.
type labelService struct {
	boxRepo     repository.BoxRepository
	storageRepo repository.StorageRepository
	renderer    service.LabelService
	logger      *slog.Logger
}

// LabelServiceParams holds dependencies for LabelService, injected by Fx.
type LabelServiceParams struct {
	fx.In

	BoxRepo     repository.BoxRepository
	StorageRepo repository.StorageRepository
	Renderer    service.LabelService
	Logger      *slog.Logger
}

// NewLabelService is the constructor for labelService.
func NewLabelService(params LabelServiceParams) usecase.LabelUsecase {
	return &labelService{
		boxRepo:     params.BoxRepo,
		storageRepo: params.StorageRepo,
		renderer:    params.Renderer,
		logger:      params.Logger,
	}
}

func (srv *labelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BoxLabel renders the PNG QR label for a box.
func (srv *labelService) BoxLabel(ctx context.Context, boxID uuid.UUID) ([]byte, error) {
	box, err := srv.boxRepo.FindByID(ctx, boxID)
	if err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound.WrapMessage("no box with this id")
		}

		return nil, errors.Wrap(err, "failed to load box for label")
	}

	png, err := srv.renderer.RenderLabel(service.LabelPayload{
		Kind: service.LabelKindBox,
		ID:   box.ID,
		Code: box.LabelCode,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render box label", slog.Any("boxID", boxID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render box label")
	}

	return png, nil
}

// StorageLabel renders the PNG QR label for a storage.
func (srv *labelService) StorageLabel(ctx context.Context, storageID uuid.UUID) ([]byte, error) {
	storage, err := srv.storageRepo.FindByID(ctx, storageID)
	if err != nil {
		if errors.Is(err, repository.ErrStorageNotFound) {
			return nil, domainerrors.ErrStorageNotFound.WrapMessage("no storage with this id")
		}

		return nil, errors.Wrap(err, "failed to load storage for label")
	}

	png, err := srv.renderer.RenderLabel(service.LabelPayload{
		Kind: service.LabelKindStorage,
		ID:   storage.ID,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to render storage label", slog.Any("storageID", storageID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render storage label")
	}

	return png, nil
}
