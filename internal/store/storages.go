// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

// Storages bundles every repository over one shared KV store. It is the
// unit the rest of the application is wired with.
type Storages struct {
	Sessions     SessionRepository
	PrivateKeys  PrivateKeyRepository
	PasswordTags PasswordTagRepository
	Accounts     AccountRepository
	Events       EventRepository
	Windows      WindowRepository

	kv KVStore
}

// NewStorages constructs all repositories over the given KV store.
func NewStorages(kv KVStore, log *logger.Logger) *Storages {
	return &Storages{
		Sessions:     NewSessionRepository(kv, log),
		PrivateKeys:  NewPrivateKeyRepository(kv, log),
		PasswordTags: NewPasswordTagRepository(kv, log),
		Accounts:     NewAccountRepository(kv, log),
		Events:       NewEventRepository(kv, log),
		Windows:      NewWindowRepository(kv, log),
		kv:           kv,
	}
}

// Close releases the underlying KV store.
func (s *Storages) Close() error {
	return s.kv.Close()
}
