// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-algo-wallet/models"
)

// KVStore is the persistent key-value store every wallet record lives in.
// It is the single source of truth: no in-memory state survives a process
// restart, so anything the wallet needs to resume correctly must go through
// this interface before the caller yields control.
//
// Each mutation is a single atomic upsert or removal keyed by id; there are
// no multi-key transactions.
type KVStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set upserts value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error

	// List returns all key/value pairs whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Close releases the underlying resources.
	Close() error
}

// SessionRepository is CRUD over authorization grants.
type SessionRepository interface {
	// FindByHostAndNetwork returns the session for the (host, genesisHash)
	// pair, or [ErrSessionNotFound]. At most one such session exists.
	FindByHostAndNetwork(ctx context.Context, host, genesisHash string) (models.Session, error)

	// FindByHost returns every session held by host, across all networks.
	FindByHost(ctx context.Context, host string) ([]models.Session, error)

	// GetAll returns every stored session.
	GetAll(ctx context.Context) ([]models.Session, error)

	// Save upserts the session by id, replacing any other session bound to
	// the same (host, genesisHash) pair so the uniqueness invariant holds.
	Save(ctx context.Context, session models.Session) (models.Session, error)

	// RemoveByIDs deletes the sessions with the given ids.
	RemoveByIDs(ctx context.Context, ids ...string) error
}

// PrivateKeyRepository stores encrypted private-key envelopes keyed by
// public key. It never sees plaintext key material.
type PrivateKeyRepository interface {
	GetByPublicKey(ctx context.Context, publicKey string) (models.PrivateKeyRecord, error)
	GetAll(ctx context.Context) ([]models.PrivateKeyRecord, error)
	Save(ctx context.Context, record models.PrivateKeyRecord) (models.PrivateKeyRecord, error)
	RemoveByPublicKey(ctx context.Context, publicKey string) error
	RemoveAll(ctx context.Context) error
}

// PasswordTagRepository stores the single password verification tag.
type PasswordTagRepository interface {
	// Get returns the tag, or [ErrPasswordTagNotFound] when the vault is
	// uninitialized.
	Get(ctx context.Context) (models.PasswordTag, error)
	Save(ctx context.Context, tag models.PasswordTag) (models.PasswordTag, error)
}

// AccountRepository stores account display records keyed by address.
type AccountRepository interface {
	GetByAddress(ctx context.Context, address string) (models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, account models.Account) (models.Account, error)
	RemoveByAddress(ctx context.Context, address string) error
}

// EventRepository stores pending client events keyed by request id.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (models.PendingClientEvent, error)
	GetAll(ctx context.Context) ([]models.PendingClientEvent, error)
	Save(ctx context.Context, event models.PendingClientEvent) (models.PendingClientEvent, error)
	RemoveByID(ctx context.Context, id string) error
}

// WindowRepository stores records of wallet-owned UI windows keyed by
// window id.
type WindowRepository interface {
	GetByID(ctx context.Context, id string) (models.AppWindow, error)
	GetAll(ctx context.Context) ([]models.AppWindow, error)
	Save(ctx context.Context, window models.AppWindow) (models.AppWindow, error)
	RemoveByID(ctx context.Context, id string) error
}
