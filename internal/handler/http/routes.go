// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// dapp-facing provider bridge
	router.Group(func(r chi.Router) {
		r.Post("/api/provider/requests", h.submitRequest)
		r.Get("/api/provider/poll", h.pollResponses)
	})

	// wallet UI surface
	router.Route("/api/ui", func(r chi.Router) {
		r.Get("/notifications", h.pollNotifications)

		r.Post("/windows", h.registerWindow)
		r.Post("/windows/{windowID}/closed", h.windowClosed)

		r.Get("/events", h.listPendingEvents)
		r.Post("/events/{requestID}/approve", h.approveEvent)
		r.Post("/events/{requestID}/reject", h.rejectEvent)

		r.Get("/sessions", h.listSessions)
		r.Delete("/sessions", h.removeSessions)

		r.Post("/vault/password", h.setPassword)
		r.Post("/vault/verify", h.verifyPassword)

		r.Get("/accounts", h.listAccounts)
		r.Post("/accounts", h.createAccount)
		r.Post("/accounts/{address}/mnemonic", h.exportMnemonic)
		r.Delete("/accounts/{address}", h.removeAccount)
	})

	return router
}
