// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

// walletStoreTable is the single table every wallet record lives in, one
// row per key. Created by the embedded goose migrations.
const walletStoreTable = "wallet_store"

// sqliteKVStore is the SQLite-backed implementation of [KVStore].
//
// Every mutation is a single-row upsert or delete, which gives the
// atomicity guarantee the rest of the wallet relies on without explicit
// transactions.
type sqliteKVStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKVStore constructs a [KVStore] backed by the provided database
// handle.
func NewSQLiteKVStore(db *DB, logger *logger.Logger) KVStore {
	logger.Debug().Msg("creating sqlite kv store")
	return &sqliteKVStore{
		db:     db,
		logger: logger,
	}
}

// Get implements [KVStore].
func (s *sqliteKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From(walletStoreTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [KVStore]. The upsert is a single statement so concurrent
// writers can never observe a half-written record.
func (s *sqliteKVStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert(walletStoreTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Remove implements [KVStore].
func (s *sqliteKVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete(walletStoreTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// List implements [KVStore].
func (s *sqliteKVStore) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	// Prefixes are fixed literals from keys.go; none contain LIKE wildcards.
	query, args, err := sq.Select("key", "value").
		From(walletStoreTable).
		Where(sq.Like{"key": prefix + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// Close implements [KVStore].
func (s *sqliteKVStore) Close() error {
	return s.db.Close()
}
