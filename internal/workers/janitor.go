// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// sessionJanitor periodically removes sessions granted for networks the
// wallet no longer supports. Such sessions can appear after a configuration
// change and would otherwise linger in the store forever, since sessions
// only ever expire by explicit disable.
type sessionJanitor struct {
	sessions  service.SessionService
	transport service.Transport
	supported map[string]struct{}
	interval  time.Duration

	logger *logger.Logger
}

func newSessionJanitor(
	sessions service.SessionService,
	transport service.Transport,
	networks []models.Network,
	interval time.Duration,
	logger *logger.Logger,
) *sessionJanitor {
	supported := make(map[string]struct{}, len(networks))
	for _, network := range networks {
		supported[network.GenesisHash] = struct{}{}
	}

	return &sessionJanitor{
		sessions:  sessions,
		transport: transport,
		supported: supported,
		interval:  interval,
		logger:    logger,
	}
}

func (j *sessionJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := j.sweep(context.Background()); err != nil {
				j.logger.Err(err).Msg("session janitor sweep failed")
			}
		}
	}()
}

func (j *sessionJanitor) sweep(ctx context.Context) error {
	sessions, err := j.sessions.GetAll(ctx)
	if err != nil {
		return err
	}

	var stale []string
	for _, session := range sessions {
		if _, ok := j.supported[session.GenesisHash]; !ok {
			stale = append(stale, session.ID)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	if err := j.sessions.RemoveByIDs(ctx, stale...); err != nil {
		return err
	}

	j.logger.Info().Int("count", len(stale)).Msg("stale sessions removed")

	return j.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationSessionsChanged})
}
