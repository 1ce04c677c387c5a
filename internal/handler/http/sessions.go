// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type removeSessionsRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.services.SessionService.GetAll(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing sessions failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}

func (h *Handler) removeSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body removeSessionsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if len(body.IDs) == 0 {
		http.Error(w, app.MsgSessionIDsRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.SessionService.RemoveByIDs(ctx, body.IDs...); err != nil {
		logger.FromRequest(r).Err(err).Msg("removing sessions failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	if err := h.hub.Broadcast(ctx, models.UINotification{Type: models.NotificationSessionsChanged}); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("broadcasting session change failed")
	}

	w.WriteHeader(http.StatusOK)
}
