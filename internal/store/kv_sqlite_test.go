// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

func newTestSQLiteKV(t *testing.T) (*sqliteKVStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := &sqliteKVStore{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return kv, mock, db
}

func TestSQLiteKV_Get_Success(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"s-1"}`))
	mock.ExpectQuery("SELECT value FROM wallet_store").
		WithArgs("session:s-1").
		WillReturnRows(rows)

	value, err := kv.Get(context.Background(), "session:s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != `{"id":"s-1"}` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM wallet_store").
		WithArgs("session:missing").
		WillReturnError(sql.ErrNoRows)

	_, err := kv.Get(context.Background(), "session:missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSQLiteKV_Get_QueryError(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM wallet_store").
		WithArgs("session:s-1").
		WillReturnError(errors.New("disk I/O error"))

	_, err := kv.Get(context.Background(), "session:s-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSQLiteKV_Set_Upserts(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO wallet_store").
		WithArgs("account:ADDR", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := kv.Set(context.Background(), "account:ADDR", []byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteKV_Remove_MultipleKeys(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM wallet_store").
		WithArgs("session:s-1", "session:s-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := kv.Remove(context.Background(), "session:s-1", "session:s-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Removing nothing must not touch the database at all.
func TestSQLiteKV_Remove_NoKeys(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	if err := kv.Remove(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database access: %v", err)
	}
}

func TestSQLiteKV_List_FiltersByPrefix(t *testing.T) {
	kv, mock, db := newTestSQLiteKV(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("event:req-1", []byte(`{"id":"req-1"}`)).
		AddRow("event:req-2", []byte(`{"id":"req-2"}`))
	mock.ExpectQuery("SELECT key, value FROM wallet_store").
		WithArgs("event:%").
		WillReturnRows(rows)

	result, err := kv.List(context.Background(), "event:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result))
	}
	if string(result["event:req-1"]) != `{"id":"req-1"}` {
		t.Errorf("unexpected value for event:req-1: %s", result["event:req-1"])
	}
}
