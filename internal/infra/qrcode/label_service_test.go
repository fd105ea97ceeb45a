package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanbox/config"
	"scanbox/internal/domain/service"
)

func newService(size int, level string) service.LabelService {
	return NewLabelService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
	}})
}

func TestNewLabelService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestLabelService_RenderLabel(t *testing.T) {
	svc := newService(256, "M")

	qrBytes, err := svc.RenderLabel(service.LabelPayload{
		Kind: service.LabelKindBox,
		ID:   uuid.New(),
		Code: "BX-0042",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestLabelService_RenderLabel_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small label", 128},
		{"Medium label", 256},
		{"Large label", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.size, "M")

			qrBytes, err := svc.RenderLabel(service.LabelPayload{
				Kind: service.LabelKindStorage,
				ID:   uuid.New(),
				Code: "ST-0007",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestLabelService_ParseLabel(t *testing.T) {
	svc := newService(256, "M")
	boxID := uuid.New()

	data := labelData{Kind: "box", ID: boxID.String(), Code: "BX-0042"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	payload, err := svc.ParseLabel(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, service.LabelKindBox, payload.Kind)
	assert.Equal(t, boxID, payload.ID)
	assert.Equal(t, "BX-0042", payload.Code)
}

func TestLabelService_ParseLabel_InvalidJSON(t *testing.T) {
	svc := newService(256, "M")

	_, err := svc.ParseLabel("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal label data")
}

func TestLabelService_ParseLabel_InvalidKind(t *testing.T) {
	svc := newService(256, "M")

	data := labelData{Kind: "pallet", ID: uuid.New().String(), Code: "XX-0001"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseLabel(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid label kind")
}

func TestLabelService_ParseLabel_InvalidUUID(t *testing.T) {
	svc := newService(256, "M")

	data := labelData{Kind: "storage", ID: "not-a-valid-uuid", Code: "ST-0007"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseLabel(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse label entity ID")
}

func TestLabelService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewLabelService(&config.Config{})

	qrBytes, err := svc.RenderLabel(service.LabelPayload{
		Kind: service.LabelKindBox,
		ID:   uuid.New(),
		Code: "BX-0001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
