// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

func newTestEventRepo() EventRepository {
	return NewEventRepository(NewMemoryKVStore(), logger.Nop())
}

func TestEventRepo_SaveAndGetByID(t *testing.T) {
	repo := newTestEventRepo()
	ctx := context.Background()

	event := models.PendingClientEvent{
		ID:        "req-1",
		Type:      models.MethodEnable,
		TabID:     "tab-1",
		CreatedAt: 100,
	}
	if _, err := repo.Save(ctx, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TabID != "tab-1" || got.Type != models.MethodEnable {
		t.Errorf("unexpected event: %+v", got)
	}
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestEventRepo()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

// Events are keyed by request id, so saving the same id twice overwrites
// instead of producing a second queue entry.
func TestEventRepo_Save_SameIDOverwrites(t *testing.T) {
	repo := newTestEventRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, models.PendingClientEvent{ID: "req-1", TabID: "tab-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Save(ctx, models.PendingClientEvent{ID: "req-1", TabID: "tab-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].TabID != "tab-2" {
		t.Errorf("expected the later save to win, got tab %s", events[0].TabID)
	}
}

func TestEventRepo_GetAll_OrderedByEnqueueTime(t *testing.T) {
	repo := newTestEventRepo()
	ctx := context.Background()

	seeds := []models.PendingClientEvent{
		{ID: "req-late", CreatedAt: 300},
		{ID: "req-early", CreatedAt: 100},
		{ID: "req-mid", CreatedAt: 200},
	}
	for _, e := range seeds {
		if _, err := repo.Save(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	events, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"req-early", "req-mid", "req-late"}
	for i, want := range wantOrder {
		if events[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, events[i].ID)
		}
	}
}

func TestEventRepo_RemoveByID(t *testing.T) {
	repo := newTestEventRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, models.PendingClientEvent{ID: "req-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.RemoveByID(ctx, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(ctx, "req-1"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound after removal, got %v", err)
	}
}
