// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// sessionRepository is the KV-backed implementation of [SessionRepository].
type sessionRepository struct {
	kv     KVStore
	logger *logger.Logger
	now    func() int64
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided KV store.
func NewSessionRepository(kv KVStore, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		kv:     kv,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// FindByHostAndNetwork implements [SessionRepository].
func (r *sessionRepository) FindByHostAndNetwork(ctx context.Context, host, genesisHash string) (models.Session, error) {
	sessions, err := r.GetAll(ctx)
	if err != nil {
		return models.Session{}, err
	}

	for _, session := range sessions {
		if session.Host == host && session.GenesisHash == genesisHash {
			return session, nil
		}
	}

	return models.Session{}, ErrSessionNotFound
}

// FindByHost implements [SessionRepository]. Results are ordered by
// creation time so callers see a stable view.
func (r *sessionRepository) FindByHost(ctx context.Context, host string) ([]models.Session, error) {
	sessions, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.Host == host {
			matched = append(matched, session)
		}
	}

	return matched, nil
}

// GetAll implements [SessionRepository].
func (r *sessionRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	sessions, err := listRecords[models.Session](ctx, r.kv, sessionKeyPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt < sessions[j].CreatedAt })
	return sessions, nil
}

// Save implements [SessionRepository]. Besides the upsert it enforces the
// one-session-per-(host, genesisHash) invariant: any other session bound to
// the same pair is removed in the same call.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.Touch(r.now())

	existing, err := r.GetAll(ctx)
	if err != nil {
		return models.Session{}, err
	}

	var duplicates []string
	for _, other := range existing {
		if other.ID != session.ID && other.Host == session.Host && other.GenesisHash == session.GenesisHash {
			duplicates = append(duplicates, sessionKey(other.ID))
		}
	}
	if len(duplicates) > 0 {
		log.Debug().
			Str("host", session.Host).
			Str("genesisHash", session.GenesisHash).
			Int("count", len(duplicates)).
			Msg("removing duplicate sessions for host and network")
		if err = r.kv.Remove(ctx, duplicates...); err != nil {
			return models.Session{}, fmt.Errorf("remove duplicate sessions: %w", err)
		}
	}

	if err = putRecord(ctx, r.kv, sessionKey(session.ID), session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// RemoveByIDs implements [SessionRepository].
func (r *sessionRepository) RemoveByIDs(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	return r.kv.Remove(ctx, keys...)
}
