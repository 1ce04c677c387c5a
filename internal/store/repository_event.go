// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// eventRepository is the KV-backed implementation of [EventRepository].
// Events are keyed by request id, which makes the store itself the
// deduplication index for the queue.
type eventRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// KV store.
func NewEventRepository(kv KVStore, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		kv:     kv,
		logger: logger,
	}
}

// GetByID implements [EventRepository].
func (r *eventRepository) GetByID(ctx context.Context, id string) (models.PendingClientEvent, error) {
	return getRecord[models.PendingClientEvent](ctx, r.kv, eventKey(id), ErrEventNotFound)
}

// GetAll implements [EventRepository]. Events are ordered by enqueue time.
func (r *eventRepository) GetAll(ctx context.Context) ([]models.PendingClientEvent, error) {
	events, err := listRecords[models.PendingClientEvent](ctx, r.kv, eventKeyPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt < events[j].CreatedAt })
	return events, nil
}

// Save implements [EventRepository].
func (r *eventRepository) Save(ctx context.Context, event models.PendingClientEvent) (models.PendingClientEvent, error) {
	if err := putRecord(ctx, r.kv, eventKey(event.ID), event); err != nil {
		return models.PendingClientEvent{}, err
	}
	return event, nil
}

// RemoveByID implements [EventRepository].
func (r *eventRepository) RemoveByID(ctx context.Context, id string) error {
	return r.kv.Remove(ctx, eventKey(id))
}
