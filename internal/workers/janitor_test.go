// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type recordingTransport struct {
	broadcasts []models.UINotification
}

func (t *recordingTransport) Deliver(context.Context, string, models.ResponseMessage) error {
	return nil
}

func (t *recordingTransport) Broadcast(_ context.Context, notification models.UINotification) error {
	t.broadcasts = append(t.broadcasts, notification)
	return nil
}

func TestSessionJanitor_Sweep(t *testing.T) {
	ctx := context.Background()
	storages := store.NewStorages(store.NewMemoryKVStore(), logger.Nop())
	sessions := service.NewSessionService(storages.Sessions, logger.Nop())

	supported, err := sessions.Grant(ctx, models.Session{
		ID:          "session-supported",
		Host:        "https://dapp.example",
		GenesisHash: "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=",
	})
	require.NoError(t, err)

	_, err = sessions.Grant(ctx, models.Session{
		ID:          "session-stale",
		Host:        "https://old.example",
		GenesisHash: "no-longer-supported-genesis-hash",
	})
	require.NoError(t, err)

	transport := &recordingTransport{}
	janitor := newSessionJanitor(sessions, transport, models.DefaultNetworks(), time.Minute, logger.Nop())

	require.NoError(t, janitor.sweep(ctx))

	remaining, err := sessions.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, supported.ID, remaining[0].ID)

	require.Len(t, transport.broadcasts, 1)
	assert.Equal(t, models.NotificationSessionsChanged, transport.broadcasts[0].Type)
}

func TestSessionJanitor_Sweep_NothingStale(t *testing.T) {
	ctx := context.Background()
	storages := store.NewStorages(store.NewMemoryKVStore(), logger.Nop())
	sessions := service.NewSessionService(storages.Sessions, logger.Nop())

	_, err := sessions.Grant(ctx, models.Session{
		ID:          "session-supported",
		Host:        "https://dapp.example",
		GenesisHash: "wGHE2Pwdvd7S12BL5FaOP20EGYesN73ktiC1qzkkit8=",
	})
	require.NoError(t, err)

	transport := &recordingTransport{}
	janitor := newSessionJanitor(sessions, transport, models.DefaultNetworks(), time.Minute, logger.Nop())

	require.NoError(t, janitor.sweep(ctx))

	remaining, err := sessions.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Empty(t, transport.broadcasts)
}
