// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// windowRepository is the KV-backed implementation of [WindowRepository].
type windowRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewWindowRepository constructs a [WindowRepository] backed by the
// provided KV store.
func NewWindowRepository(kv KVStore, logger *logger.Logger) WindowRepository {
	logger.Debug().Msg("creating window repository")
	return &windowRepository{
		kv:     kv,
		logger: logger,
	}
}

// GetByID implements [WindowRepository].
func (r *windowRepository) GetByID(ctx context.Context, id string) (models.AppWindow, error) {
	return getRecord[models.AppWindow](ctx, r.kv, windowKey(id), ErrWindowNotFound)
}

// GetAll implements [WindowRepository].
func (r *windowRepository) GetAll(ctx context.Context) ([]models.AppWindow, error) {
	windows, err := listRecords[models.AppWindow](ctx, r.kv, windowKeyPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].CreatedAt < windows[j].CreatedAt })
	return windows, nil
}

// Save implements [WindowRepository].
func (r *windowRepository) Save(ctx context.Context, window models.AppWindow) (models.AppWindow, error) {
	if err := putRecord(ctx, r.kv, windowKey(window.ID), window); err != nil {
		return models.AppWindow{}, err
	}
	return window, nil
}

// RemoveByID implements [WindowRepository].
func (r *windowRepository) RemoveByID(ctx context.Context, id string) error {
	return r.kv.Remove(ctx, windowKey(id))
}
