// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

// notificationPollTimeout bounds one notification long-poll cycle.
const notificationPollTimeout = 25 * time.Second

const surfaceIDHeader = "X-Surface-ID"

// registerWindowRequest announces a window the UI shell created on its own.
type registerWindowRequest struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

func (h *Handler) registerWindow(w http.ResponseWriter, r *http.Request) {
	var window registerWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&window); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if window.ID == "" {
		http.Error(w, app.MsgWindowIDRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.EventQueueService.RegisterWindow(r.Context(), window.ID, window.Kind); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.hub.MarkWindowOpen(window.ID)

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) windowClosed(w http.ResponseWriter, r *http.Request) {
	windowID := chi.URLParam(r, "windowID")
	h.hub.MarkWindowClosed(windowID)

	if err := h.services.EventQueueService.HandleWindowClosed(r.Context(), windowID); err != nil {
		logger.FromRequest(r).Err(err).Str("windowId", windowID).Msg("handling window close failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// pollNotifications long-polls the surface mailbox identified by the
// X-Surface-ID header. 204 means nothing arrived within the poll window;
// the surface simply polls again.
func (h *Handler) pollNotifications(w http.ResponseWriter, r *http.Request) {
	surfaceID := r.Header.Get(surfaceIDHeader)
	if surfaceID == "" {
		http.Error(w, "missing "+surfaceIDHeader+" header", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), notificationPollTimeout)
	defer cancel()

	notification, ok := h.hub.PollSurface(ctx, surfaceID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, notification)
}
