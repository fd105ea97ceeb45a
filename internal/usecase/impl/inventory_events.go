package impl

import (
	"context"
	"log/slog"

	deliverycontext "scanbox/internal/delivery/context"
	"scanbox/internal/domain/service"

	"github.com/google/uuid"
)

// Inventory event vocabulary shared by the storage and box services.
const (
	eventKindBox     = "box"
	eventKindStorage = "storage"

	eventActionCreated = "created"
	eventActionUpdated = "updated"
	eventActionDeleted = "deleted"
)

// publishInventoryEvent emits a change event best-effort: failures are
// logged and never fail the originating request.
func publishInventoryEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	kind, action string,
	entityID, ownerID uuid.UUID,
) {
	event := &service.InventoryEvent{
		Kind:      kind,
		Action:    action,
		EntityID:  entityID.String(),
		OwnerID:   ownerID.String(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := publisher.PublishInventoryEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish inventory event",
			slog.String("kind", kind),
			slog.String("action", action),
			slog.String("entity_id", event.EntityID),
			slog.Any("error", err),
		)
	}
}
