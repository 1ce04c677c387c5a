// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-algo-wallet/internal/app"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// approveEventRequest carries the user's decision data for one pending
// event. Which fields matter depends on the event's method: enable uses
// Addresses, the signing methods use Password (and optionally Signer).
type approveEventRequest struct {
	Addresses []string `json:"addresses,omitempty"`
	Signer    string   `json:"signer,omitempty"`
	Password  string   `json:"password,omitempty"`
}

func (h *Handler) listPendingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.EventQueueService.GetPending(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing pending events failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *Handler) approveEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	requestID := chi.URLParam(r, "requestID")

	var decision approveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	event, err := h.services.EventQueueService.GetByID(ctx, requestID)
	if err != nil {
		h.writeEventError(w, log, err)
		return
	}

	switch event.Type {
	case models.MethodEnable:
		err = h.services.ProviderService.CompleteEnable(ctx, requestID, decision.Addresses)
	case models.MethodSignMessage:
		err = h.services.ProviderService.CompleteSignMessage(ctx, requestID, decision.Signer, decision.Password)
	case models.MethodSignTransactions:
		err = h.services.ProviderService.CompleteSignTransactions(ctx, requestID, decision.Password)
	default:
		http.Error(w, "event cannot be approved", http.StatusConflict)
		return
	}
	if err != nil {
		h.writeEventError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) rejectEvent(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	if err := h.services.ProviderService.RejectPending(r.Context(), requestID); err != nil {
		h.writeEventError(w, logger.FromRequest(r), err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// writeEventError maps event resolution errors onto HTTP statuses: a wrong
// password or a bad address selection is the user's to retry, a missing
// event is gone for good.
func (h *Handler) writeEventError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPassword), errors.Is(err, service.ErrPasswordNotSet):
		http.Error(w, app.MsgInvalidWalletPassword, http.StatusUnauthorized)
	case errors.Is(err, service.ErrEventNotPending):
		http.Error(w, app.MsgNoPendingEvent, http.StatusNotFound)
	case errors.Is(err, service.ErrNoAddressesApproved), errors.Is(err, service.ErrUnknownAddress):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Err(err).Msg("resolving pending event failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
