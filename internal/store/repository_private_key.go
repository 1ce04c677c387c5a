// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// privateKeyRepository is the KV-backed implementation of
// [PrivateKeyRepository]. Records are keyed by public key; the envelope
// inside each record is opaque to this layer.
type privateKeyRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewPrivateKeyRepository constructs a [PrivateKeyRepository] backed by the
// provided KV store.
func NewPrivateKeyRepository(kv KVStore, logger *logger.Logger) PrivateKeyRepository {
	logger.Debug().Msg("creating private key repository")
	return &privateKeyRepository{
		kv:     kv,
		logger: logger,
	}
}

// GetByPublicKey implements [PrivateKeyRepository].
func (r *privateKeyRepository) GetByPublicKey(ctx context.Context, publicKey string) (models.PrivateKeyRecord, error) {
	return getRecord[models.PrivateKeyRecord](ctx, r.kv, privateKeyKey(publicKey), ErrPrivateKeyNotFound)
}

// GetAll implements [PrivateKeyRepository].
func (r *privateKeyRepository) GetAll(ctx context.Context) ([]models.PrivateKeyRecord, error) {
	records, err := listRecords[models.PrivateKeyRecord](ctx, r.kv, privateKeyKeyPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].PublicKey < records[j].PublicKey })
	return records, nil
}

// Save implements [PrivateKeyRepository].
func (r *privateKeyRepository) Save(ctx context.Context, record models.PrivateKeyRecord) (models.PrivateKeyRecord, error) {
	if err := putRecord(ctx, r.kv, privateKeyKey(record.PublicKey), record); err != nil {
		return models.PrivateKeyRecord{}, err
	}
	return record, nil
}

// RemoveByPublicKey implements [PrivateKeyRepository].
func (r *privateKeyRepository) RemoveByPublicKey(ctx context.Context, publicKey string) error {
	return r.kv.Remove(ctx, privateKeyKey(publicKey))
}

// RemoveAll implements [PrivateKeyRepository]. Used on first-time vault
// setup to purge key records left behind by an inconsistent install.
func (r *privateKeyRepository) RemoveAll(ctx context.Context) error {
	values, err := r.kv.List(ctx, privateKeyKeyPrefix)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	return r.kv.Remove(ctx, keys...)
}
