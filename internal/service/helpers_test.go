// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"sync"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

const testGenesisHash = "SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=" // testnet-v1.0

func testWalletConfig() config.Wallet {
	return config.Wallet{
		Name:               "go-algo-wallet",
		Icon:               "/static/wallet.svg",
		Host:               "go-algo-wallet",
		TagPlaintext:       "test-installation",
		DefaultGenesisHash: testGenesisHash,
	}
}

func newTestStorages() *store.Storages {
	return store.NewStorages(store.NewMemoryKVStore(), logger.Nop())
}

// ─────────────────────────────────────────────
// Fake: WindowManager
// ─────────────────────────────────────────────

// fakeWindowManager tracks opened windows in memory and hands out
// sequential window ids.
type fakeWindowManager struct {
	mu     sync.Mutex
	nextID int
	open   map[string]struct{}

	openErr error
}

func newFakeWindowManager() *fakeWindowManager {
	return &fakeWindowManager{open: make(map[string]struct{})}
}

func (f *fakeWindowManager) Open(_ context.Context, _ models.WindowSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.openErr != nil {
		return "", f.openErr
	}

	f.nextID++
	id := fmt.Sprintf("window-%d", f.nextID)
	f.open[id] = struct{}{}
	return id, nil
}

func (f *fakeWindowManager) Close(_ context.Context, windowID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.open, windowID)
	return nil
}

func (f *fakeWindowManager) OpenWindowIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.open))
	for id := range f.open {
		ids = append(ids, id)
	}
	return ids, nil
}

// markOpen registers a window as open without going through Open, for
// simulating windows that predate the service under test.
func (f *fakeWindowManager) markOpen(windowID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open[windowID] = struct{}{}
}

func (f *fakeWindowManager) openCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.open)
}

// ─────────────────────────────────────────────
// Fake: Transport
// ─────────────────────────────────────────────

type deliveredMessage struct {
	TabID   string
	Message models.ResponseMessage
}

// fakeTransport records every delivery and broadcast.
type fakeTransport struct {
	mu         sync.Mutex
	delivered  []deliveredMessage
	broadcasts []models.UINotification
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{}
}

func (f *fakeTransport) Deliver(_ context.Context, tabID string, message models.ResponseMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.delivered = append(f.delivered, deliveredMessage{TabID: tabID, Message: message})
	return nil
}

func (f *fakeTransport) Broadcast(_ context.Context, notification models.UINotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.broadcasts = append(f.broadcasts, notification)
	return nil
}

func (f *fakeTransport) deliveries() []deliveredMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]deliveredMessage, len(f.delivered))
	copy(out, f.delivered)
	return out
}

func (f *fakeTransport) broadcastTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.broadcasts))
	for _, n := range f.broadcasts {
		out = append(out, n.Type)
	}
	return out
}

// ─────────────────────────────────────────────
// Transaction fixtures
// ─────────────────────────────────────────────

func mustDigest(encoded string) types.Digest {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		panic(err)
	}
	var digest types.Digest
	copy(digest[:], raw)
	return digest
}

func addressForPublicKey(t *testing.T, publicKey ed25519.PublicKey) string {
	t.Helper()

	address, err := types.EncodeAddress(publicKey)
	require.NoError(t, err)
	return address
}

// makePayment builds a minimal payment transaction on testnet.
func makePayment(sender, receiver types.Address, amount uint64) types.Transaction {
	return types.Transaction{
		Type: types.PaymentTx,
		Header: types.Header{
			Sender:      sender,
			Fee:         1000,
			FirstValid:  1000,
			LastValid:   2000,
			GenesisID:   "testnet-v1.0",
			GenesisHash: mustDigest(testGenesisHash),
		},
		PaymentTxnFields: types.PaymentTxnFields{
			Receiver: receiver,
			Amount:   types.MicroAlgos(amount),
		},
	}
}
