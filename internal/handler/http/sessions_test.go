// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// ─────────────────────────────────────────────
// listSessions
// ─────────────────────────────────────────────

func TestListSessions_Success(t *testing.T) {
	h, m := newTestHandler(t)

	sessions := []models.Session{
		{ID: "s-1", Host: "dapp.example.org", GenesisHash: "hash-a"},
		{ID: "s-2", Host: "other.example.org", GenesisHash: "hash-b"},
	}
	m.sessions.EXPECT().GetAll(gomock.Any()).Return(sessions, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/sessions", nil)
	rec := httptest.NewRecorder()

	h.listSessions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Session
	decodeBody(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "dapp.example.org", got[0].Host)
}

func TestListSessions_StorageError(t *testing.T) {
	h, m := newTestHandler(t)

	m.sessions.EXPECT().GetAll(gomock.Any()).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/ui/sessions", nil)
	rec := httptest.NewRecorder()

	h.listSessions(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// removeSessions
// ─────────────────────────────────────────────

func TestRemoveSessions_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.sessions.EXPECT().RemoveByIDs(gomock.Any(), "s-1", "s-2").Return(nil)

	body := removeSessionsRequest{IDs: []string{"s-1", "s-2"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/sessions", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.removeSessions(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Revoking sessions must tell every UI surface to refresh its list.
func TestRemoveSessions_BroadcastsSessionsChanged(t *testing.T) {
	h, m := newTestHandler(t)

	m.sessions.EXPECT().RemoveByIDs(gomock.Any(), "s-1").Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _ = h.hub.PollSurface(ctx, "surface-1")

	body := removeSessionsRequest{IDs: []string{"s-1"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/sessions", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.removeSessions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	notification, ok := h.hub.PollSurface(context.Background(), "surface-1")
	require.True(t, ok)
	assert.Equal(t, models.NotificationSessionsChanged, notification.Type)
}

func TestRemoveSessions_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/ui/sessions", strings.NewReader(`[`))
	rec := httptest.NewRecorder()

	h.removeSessions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveSessions_EmptyIDs(t *testing.T) {
	h, _ := newTestHandler(t)

	body := removeSessionsRequest{}
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/sessions", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.removeSessions(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgSessionIDsRequired)
}

func TestRemoveSessions_StorageError(t *testing.T) {
	h, m := newTestHandler(t)

	m.sessions.EXPECT().RemoveByIDs(gomock.Any(), "s-1").Return(assert.AnError)

	body := removeSessionsRequest{IDs: []string{"s-1"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/ui/sessions", encodeBody(t, body))
	rec := httptest.NewRecorder()

	h.removeSessions(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
