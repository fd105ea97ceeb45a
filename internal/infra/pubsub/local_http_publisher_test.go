package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanbox/internal/domain/service"
)

func TestLocalHTTPPublisher_PublishInventoryEvent(t *testing.T) {
	var received PubSubPushMessage
	consumer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer consumer.Close()

	publisher := NewLocalHTTPPublisher(consumer.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer publisher.Close()

	event := &service.InventoryEvent{
		Kind:      "box",
		Action:    "created",
		EntityID:  "b2f4c1d0-0000-0000-0000-000000000001",
		OwnerID:   "a1e3b2c0-0000-0000-0000-000000000002",
		RequestID: "req-123",
	}
	require.NoError(t, publisher.PublishInventoryEvent(context.Background(), event))

	assert.Equal(t, "box", received.Message.Attributes["kind"])
	assert.Equal(t, "created", received.Message.Attributes["action"])
	assert.Equal(t, "req-123", received.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.InventoryEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_ConsumerFailure(t *testing.T) {
	consumer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer consumer.Close()

	publisher := NewLocalHTTPPublisher(consumer.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishInventoryEvent(context.Background(), &service.InventoryEvent{
		Kind:   "storage",
		Action: "deleted",
	})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.NoError(t, publisher.PublishInventoryEvent(context.Background(), &service.InventoryEvent{
		Kind:   "box",
		Action: "updated",
	}))
	assert.NoError(t, publisher.Close())
}
