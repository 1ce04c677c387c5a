// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-algo-wallet/models"
)

func newTestAdapter(t *testing.T, serverURL string) DaemonAdapter {
	t.Helper()
	return NewHTTPDaemonAdapter(HTTPClientConfig{BaseURL: serverURL})
}

func TestListPendingEvents_Success(t *testing.T) {
	want := []models.PendingClientEvent{
		{ID: "req-1", Type: models.MethodEnable, TabID: "tab-1"},
		{ID: "req-2", Type: models.MethodSignTransactions, TabID: "tab-2"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ui/events", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListPendingEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApproveEvent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ui/events/req-1/approve", r.URL.Path)

		var decision EventDecision
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decision))
		assert.Equal(t, "secret", decision.Password)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ApproveEvent(context.Background(), "req-1", EventDecision{Password: "secret"})

	require.NoError(t, err)
}

func TestApproveEvent_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid wallet password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ApproveEvent(context.Background(), "req-1", EventDecision{Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRejectEvent_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no pending event for request id"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RejectEvent(context.Background(), "req-gone")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPollNotification_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "surface-1", r.Header.Get(surfaceIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, ok, err := a.PollNotification(context.Background(), "surface-1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPollNotification_Delivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UINotification{Type: models.NotificationEventsChanged})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	notification, ok, err := a.PollNotification(context.Background(), "surface-1")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.NotificationEventsChanged, notification.Type)
}

func TestVerifyPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ui/vault/verify", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"valid": body["password"] == "secret"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	valid, err := a.VerifyPassword(context.Background(), "secret")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = a.VerifyPassword(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestCreateAccount_Success(t *testing.T) {
	want := models.Account{Address: "SOMEADDRESS", Name: "main"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ui/accounts", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateAccount(context.Background(), CreateAccountRequest{Name: "main", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoveSessions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/ui/sessions", r.URL.Path)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"session-1", "session-2"}, body["ids"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RemoveSessions(context.Background(), []string{"session-1", "session-2"})

	require.NoError(t, err)
}

func TestRegisterWindow_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("window id is required"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RegisterWindow(context.Background(), "", "main")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}
