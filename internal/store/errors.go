// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the KV store and repositories to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrKeyNotFound is returned by [KVStore.Get] when no value is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSessionNotFound is returned when a session lookup by id or by
	// (host, genesisHash) pair produces no record.
	ErrSessionNotFound = errors.New("session not found")

	// ErrPrivateKeyNotFound is returned when no private-key record exists
	// for the requested public key.
	ErrPrivateKeyNotFound = errors.New("private key record not found")

	// ErrPasswordTagNotFound is returned when the password tag has not been
	// written yet, i.e. the vault is uninitialized.
	ErrPasswordTagNotFound = errors.New("password tag not found")

	// ErrAccountNotFound is returned when no account record exists for the
	// requested address.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEventNotFound is returned when no pending event exists for the
	// requested request id.
	ErrEventNotFound = errors.New("pending event not found")

	// ErrWindowNotFound is returned when no window record exists for the
	// requested window id.
	ErrWindowNotFound = errors.New("window record not found")
)

// Low-level database operation errors wrapped by the sqlite-backed KV store
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values from a result
	// set fails.
	ErrScanningRows = errors.New("failed to scan store rows")
)
