// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

func newTestEventQueue(t *testing.T) (EventQueueService, *store.Storages, *fakeWindowManager, *fakeTransport) {
	t.Helper()

	storages := newTestStorages()
	windows := newFakeWindowManager()
	transport := newFakeTransport()
	queue := NewEventQueueService(storages, windows, transport, config.Windows{
		PromptWidth:  400,
		PromptHeight: 660,
		PromptLeft:   100,
		PromptTop:    100,
	}, logger.Nop())

	return queue, storages, windows, transport
}

func signMessageEvent(id, tabID string) models.PendingClientEvent {
	return models.PendingClientEvent{
		ID:    id,
		Type:  models.MethodSignMessage,
		TabID: tabID,
		Request: models.RequestMessage{
			ID:     id,
			Method: models.MethodSignMessage,
		},
	}
}

func TestEventQueueService_Enqueue_OpensPromptWindow(t *testing.T) {
	ctx := context.Background()
	queue, storages, windows, _ := newTestEventQueue(t)

	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-1", "tab-1")))

	// Persisted first, surfaced second.
	event, err := storages.Events.GetByID(ctx, "req-1")
	require.NoError(t, err)
	assert.NotZero(t, event.CreatedAt)

	assert.Equal(t, 1, windows.openCount())
	recorded, err := storages.Windows.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, models.WindowKindPrompt, recorded[0].Kind)
	assert.Equal(t, "req-1", recorded[0].EventID)
}

func TestEventQueueService_Enqueue_AnnouncesToMainWindow(t *testing.T) {
	ctx := context.Background()
	queue, storages, windows, transport := newTestEventQueue(t)

	// A live main surface is already open and recorded.
	windows.markOpen("main-window")
	_, err := storages.Windows.Save(ctx, models.AppWindow{ID: "main-window", Kind: models.WindowKindMain})
	require.NoError(t, err)

	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-1", "tab-1")))

	assert.Equal(t, 1, windows.openCount(), "no prompt window when a main window is open")
	assert.Equal(t, []string{models.NotificationEventsChanged}, transport.broadcastTypes())
}

func TestEventQueueService_Enqueue_DuplicateRequestID(t *testing.T) {
	ctx := context.Background()
	queue, _, windows, _ := newTestEventQueue(t)

	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-1", "tab-1")))
	err := queue.Enqueue(ctx, signMessageEvent("req-1", "tab-2"))
	assert.ErrorIs(t, err, ErrDuplicateEvent)

	assert.Equal(t, 1, windows.openCount(), "a duplicate must not open a second prompt")
}

func TestEventQueueService_Resolve(t *testing.T) {
	ctx := context.Background()
	queue, storages, windows, transport := newTestEventQueue(t)

	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-1", "tab-1")))

	response := models.ResponseMessage{ID: "resp-1", RequestID: "req-1", Method: models.MethodSignMessage}
	require.NoError(t, queue.Resolve(ctx, "req-1", response))

	deliveries := transport.deliveries()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "tab-1", deliveries[0].TabID)
	assert.Equal(t, "req-1", deliveries[0].Message.RequestID)

	_, err := storages.Events.GetByID(ctx, "req-1")
	assert.ErrorIs(t, err, store.ErrEventNotFound)
	assert.Equal(t, 0, windows.openCount(), "resolving must close the prompt window")
	recorded, err := storages.Windows.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestEventQueueService_Resolve_NotPending(t *testing.T) {
	ctx := context.Background()
	queue, _, _, transport := newTestEventQueue(t)

	err := queue.Resolve(ctx, "unknown", models.ResponseMessage{})
	assert.ErrorIs(t, err, ErrEventNotPending)
	assert.Empty(t, transport.deliveries())
}

func TestEventQueueService_HandleWindowClosed(t *testing.T) {
	ctx := context.Background()
	queue, storages, windows, transport := newTestEventQueue(t)

	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-1", "tab-1")))
	recorded, err := storages.Windows.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, recorded, 1)

	// The user closes the prompt without deciding.
	require.NoError(t, windows.Close(ctx, recorded[0].ID))
	require.NoError(t, queue.HandleWindowClosed(ctx, recorded[0].ID))

	_, err = storages.Events.GetByID(ctx, "req-1")
	assert.ErrorIs(t, err, store.ErrEventNotFound, "abandoned event must be purged")
	assert.Empty(t, transport.deliveries(), "no response is sent for an abandoned event")

	assert.NoError(t, queue.HandleWindowClosed(ctx, "unknown-window"))
}

func TestEventQueueService_ReconcileOnStartup(t *testing.T) {
	ctx := context.Background()
	queue, storages, windows, _ := newTestEventQueue(t)

	// Event with a prompt window that survived the restart.
	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-live", "tab-1")))

	// Event whose prompt window is gone, plus its dead window record.
	require.NoError(t, queue.Enqueue(ctx, signMessageEvent("req-dead", "tab-2")))
	recorded, err := storages.Windows.GetAll(ctx)
	require.NoError(t, err)
	for _, window := range recorded {
		if window.EventID == "req-dead" {
			require.NoError(t, windows.Close(ctx, window.ID))
		}
	}

	// Event with no window at all (was announced to a main window that is
	// gone now).
	_, err = storages.Events.Save(ctx, signMessageEvent("req-orphan", "tab-3"))
	require.NoError(t, err)

	require.NoError(t, queue.ReconcileOnStartup(ctx))

	_, err = storages.Events.GetByID(ctx, "req-live")
	assert.NoError(t, err, "event with a live window survives reconciliation")
	_, err = storages.Events.GetByID(ctx, "req-dead")
	assert.ErrorIs(t, err, store.ErrEventNotFound)
	_, err = storages.Events.GetByID(ctx, "req-orphan")
	assert.ErrorIs(t, err, store.ErrEventNotFound)

	recorded, err = storages.Windows.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "req-live", recorded[0].EventID)
}
