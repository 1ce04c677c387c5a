// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/crypto"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type Services struct {
	VaultService      VaultService
	SessionService    SessionService
	TxnGroupService   TxnGroupService
	EventQueueService EventQueueService
	ProviderService   ProviderService
}

// NewServices wires the full service graph over shared storage, the
// keychain, and the host-environment collaborators.
func NewServices(
	storages *store.Storages,
	keychain crypto.Keychain,
	windowManager WindowManager,
	transport Transport,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	vault := NewVaultService(keychain, storages, cfg.Wallet, logger)
	sessions := NewSessionService(storages.Sessions, logger)
	txnGroups := NewTxnGroupService(logger)
	events := NewEventQueueService(storages, windowManager, transport, cfg.Windows, logger)
	provider := NewProviderService(vault, sessions, txnGroups, events, transport, models.DefaultNetworks(), cfg.Wallet, logger)

	return &Services{
		VaultService:      vault,
		SessionService:    sessions,
		TxnGroupService:   txnGroups,
		EventQueueService: events,
		ProviderService:   provider,
	}
}
