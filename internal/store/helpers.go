// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// getRecord loads and decodes one JSON record, translating a missing key
// into the repository's own not-found sentinel.
func getRecord[T any](ctx context.Context, kv KVStore, key string, notFound error) (T, error) {
	var record T

	value, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return record, notFound
		}
		return record, fmt.Errorf("get %q: %w", key, err)
	}

	if err = json.Unmarshal(value, &record); err != nil {
		return record, fmt.Errorf("decode %q: %w", key, err)
	}

	return record, nil
}

// putRecord encodes and upserts one JSON record.
func putRecord[T any](ctx context.Context, kv KVStore, key string, record T) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	if err = kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	return nil
}

// listRecords loads and decodes every JSON record under prefix.
func listRecords[T any](ctx context.Context, kv KVStore, prefix string) ([]T, error) {
	values, err := kv.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}

	records := make([]T, 0, len(values))
	for key, value := range values {
		var record T
		if err = json.Unmarshal(value, &record); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		records = append(records, record)
	}

	return records, nil
}
