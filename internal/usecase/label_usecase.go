package usecase

import (
	"context"

	"github.com/google/uuid"
)

// LabelUsecase renders printable QR labels for inventory entities.
type LabelUsecase interface {
	// BoxLabel returns a PNG QR label for the box, or BoxNotFound.
	BoxLabel(ctx context.Context, boxID uuid.UUID) ([]byte, error)
	// StorageLabel returns a PNG QR label for the storage, or StorageNotFound.
	StorageLabel(ctx context.Context, storageID uuid.UUID) ([]byte, error)
}
