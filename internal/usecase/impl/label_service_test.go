package impl

import (
	"context"
	"testing"

	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/service"
	"scanbox/internal/errors"
	"scanbox/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelFixtures struct {
	service     usecase.LabelUsecase
	boxRepo     *fakeBoxRepo
	storageRepo *fakeStorageRepo
	renderer    *fakeLabelRenderer
}

func newLabelFixtures() *labelFixtures {
	boxRepo := newFakeBoxRepo()
	storageRepo := newFakeStorageRepo()
	renderer := &fakeLabelRenderer{}

	svc := NewLabelService(LabelServiceParams{
		BoxRepo:     boxRepo,
		StorageRepo: storageRepo,
		Renderer:    renderer,
		Logger:      newDiscardLogger(),
	})

	return &labelFixtures{service: svc, boxRepo: boxRepo, storageRepo: storageRepo, renderer: renderer}
}

func TestLabelService_BoxLabel(t *testing.T) {
	f := newLabelFixtures()
	box := &entity.Box{Name: "Vaisselle", OwnerID: uuid.New(), LabelCode: "BX-0AF31B22"}
	require.NoError(t, f.boxRepo.Create(context.Background(), box))

	png, err := f.service.BoxLabel(context.Background(), box.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, service.LabelKindBox, f.renderer.lastPayload.Kind)
	assert.Equal(t, box.ID, f.renderer.lastPayload.ID)
	assert.Equal(t, "BX-0AF31B22", f.renderer.lastPayload.Code)
}

func TestLabelService_BoxLabel_NotFound(t *testing.T) {
	f := newLabelFixtures()

	png, err := f.service.BoxLabel(context.Background(), uuid.New())
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrBoxNotFound))
}

func TestLabelService_StorageLabel(t *testing.T) {
	f := newLabelFixtures()
	storage := &entity.Storage{Name: "Garage", OwnerID: uuid.New()}
	require.NoError(t, f.storageRepo.Create(context.Background(), storage))

	png, err := f.service.StorageLabel(context.Background(), storage.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, service.LabelKindStorage, f.renderer.lastPayload.Kind)
	assert.Equal(t, storage.ID, f.renderer.lastPayload.ID)
	assert.Empty(t, f.renderer.lastPayload.Code)
}

func TestLabelService_StorageLabel_NotFound(t *testing.T) {
	f := newLabelFixtures()

	png, err := f.service.StorageLabel(context.Background(), uuid.New())
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageNotFound))
}
