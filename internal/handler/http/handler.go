// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/internal/validators"
)

type Handler struct {
	services         *service.Services
	hub              *Hub
	requestValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		hub:              hub,
		requestValidator: validators.NewRequestValidator(),
		logger:           logger,
	}
}

// respondJSON writes v as a JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
