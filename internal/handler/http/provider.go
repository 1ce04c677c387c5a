// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

const (
	tabIDHeader = "X-Tab-ID"

	// pollTimeout bounds one long-poll round trip; clients re-poll.
	pollTimeout = 25 * time.Second
)

// submitRequest accepts one provider request from a client tab. An
// immediately answerable request gets its response in the reply body; an
// interactive one is queued and the tab picks the terminal response up on
// its poll feed.
func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tabID := r.Header.Get(tabIDHeader)
	if tabID == "" {
		http.Error(w, "missing "+tabIDHeader+" header", http.StatusBadRequest)
		return
	}

	var request models.RequestMessage
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid provider request body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// A request without a usable id cannot be answered over the poll feed,
	// so it is the one shape rejected at the transport level.
	if err := h.requestValidator.Validate(ctx, request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.ProviderService.HandleRequest(ctx, tabID, request)
	if err != nil {
		log.Err(err).Str("requestId", request.ID).Msg("provider request failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	if response == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// pollResponses long-polls the tab's mailbox for the next terminal
// response. 204 means the poll timed out and the tab should poll again.
func (h *Handler) pollResponses(w http.ResponseWriter, r *http.Request) {
	tabID := r.Header.Get(tabIDHeader)
	if tabID == "" {
		http.Error(w, "missing "+tabIDHeader+" header", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pollTimeout)
	defer cancel()

	message, ok := h.hub.PollTab(ctx, tabID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, message)
}
