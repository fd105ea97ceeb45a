package service

import "context"

// InventoryEvent describes one change to the inventory, published for
// downstream consumers (activity feeds, sync clients).
type InventoryEvent struct {
	Kind      string `json:"kind"`   // "box" or "storage"
	Action    string `json:"action"` // "created", "updated", "deleted"
	EntityID  string `json:"entity_id"`
	OwnerID   string `json:"owner_id"`
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher emits inventory change events. Publishing is best-effort:
// callers log failures and never fail the originating request on them.
type EventPublisher interface {
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error
	Close() error
}
