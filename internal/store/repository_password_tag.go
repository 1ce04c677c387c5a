// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// passwordTagRepository is the KV-backed implementation of
// [PasswordTagRepository]. The tag lives under a single fixed key; saving
// replaces the previous tag, which keeps the exactly-one invariant trivially
// true.
type passwordTagRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewPasswordTagRepository constructs a [PasswordTagRepository] backed by
// the provided KV store.
func NewPasswordTagRepository(kv KVStore, logger *logger.Logger) PasswordTagRepository {
	logger.Debug().Msg("creating password tag repository")
	return &passwordTagRepository{
		kv:     kv,
		logger: logger,
	}
}

// Get implements [PasswordTagRepository].
func (r *passwordTagRepository) Get(ctx context.Context) (models.PasswordTag, error) {
	return getRecord[models.PasswordTag](ctx, r.kv, passwordTagKey, ErrPasswordTagNotFound)
}

// Save implements [PasswordTagRepository].
func (r *passwordTagRepository) Save(ctx context.Context, tag models.PasswordTag) (models.PasswordTag, error) {
	if err := putRecord(ctx, r.kv, passwordTagKey, tag); err != nil {
		return models.PasswordTag{}, err
	}
	return tag, nil
}
