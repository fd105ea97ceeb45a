package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "scanbox/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func registerLabelRoutes(t *testing.T, uc *fakeLabelUsecase) *httptest.Server {
	t.Helper()

	e := newTestEcho()
	h := NewLabelHandler(uc)
	e.GET("/boxes/:id/label", h.BoxLabel)
	e.GET("/storages/:id/label", h.StorageLabel)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

func TestLabelHandler_BoxLabel(t *testing.T) {
	uc := &fakeLabelUsecase{png: append(pngMagic, 0x01, 0x02)}
	server := registerLabelRoutes(t, uc)

	resp, err := http.Get(server.URL + "/boxes/" + uuid.NewString() + "/label")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, string(uc.png), readBody(t, resp))
}

func TestLabelHandler_StorageLabel_NotFound(t *testing.T) {
	uc := &fakeLabelUsecase{err: domainerrors.ErrStorageNotFound}
	server := registerLabelRoutes(t, uc)

	resp, err := http.Get(server.URL + "/storages/" + uuid.NewString() + "/label")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "STORAGE_NOT_FOUND")
}

func TestLabelHandler_InvalidID(t *testing.T) {
	server := registerLabelRoutes(t, &fakeLabelUsecase{})

	resp, err := http.Get(server.URL + "/boxes/nope/label")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
