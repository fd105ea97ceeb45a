// Package qrcode renders the printable QR labels stuck on boxes and storages.
package qrcode

import (
	"encoding/json"
	"fmt"

	"scanbox/config"
	"scanbox/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultLabelSize = 256
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// labelData is the JSON structure embedded in the QR image.
type labelData struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Code string `json:"code"`
}

// NewLabelService creates a new label service instance
func NewLabelService(cfg *config.Config) service.LabelService {
	size := defaultLabelSize
	level := "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// RenderLabel generates a PNG QR image encoding the label payload.
func (s *labelService) RenderLabel(payload service.LabelPayload) ([]byte, error) {
	data := labelData{
		Kind: string(payload.Kind),
		ID:   payload.ID.String(),
		Code: payload.Code,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLabel decodes scanned label data back into its payload.
func (s *labelService) ParseLabel(raw string) (*service.LabelPayload, error) {
	var data labelData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	kind := service.LabelKind(data.Kind)
	if kind != service.LabelKindBox && kind != service.LabelKindStorage {
		return nil, fmt.Errorf("invalid label kind: %s", data.Kind)
	}

	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label entity ID: %w", err)
	}

	return &service.LabelPayload{
		Kind: kind,
		ID:   id,
		Code: data.Code,
	}, nil
}
