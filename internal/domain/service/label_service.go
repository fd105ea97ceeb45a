package service

import "github.com/google/uuid"

// LabelKind distinguishes what a printed QR label points at.
type LabelKind string

const (
	// LabelKindBox marks a label stuck on a single box.
	LabelKindBox LabelKind = "box"
	// LabelKindStorage marks a label stuck on a whole storage.
	LabelKindStorage LabelKind = "storage"
)

// LabelPayload is the decoded content of a scanned QR label.
type LabelPayload struct {
	Kind LabelKind
	ID   uuid.UUID
	Code string
}

// LabelService renders QR label images and parses scanned label data.
type LabelService interface {
	// RenderLabel returns a PNG QR image encoding the payload.
	RenderLabel(payload LabelPayload) ([]byte, error)
	// ParseLabel inverts RenderLabel's payload encoding.
	ParseLabel(data string) (*LabelPayload, error)
}
