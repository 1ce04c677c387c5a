// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-algo-wallet/internal/handler/http"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, hub *http.Hub, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, hub, logger),
	}
}
