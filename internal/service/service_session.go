// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository

	logger *logger.Logger
}

// NewSessionService returns a [SessionService] over the given repository.
func NewSessionService(sessionRepository store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

func (s *sessionService) FindByHostAndNetwork(ctx context.Context, host, genesisHash string) (models.Session, error) {
	return s.sessionRepository.FindByHostAndNetwork(ctx, host, genesisHash)
}

func (s *sessionService) GetAll(ctx context.Context) ([]models.Session, error) {
	return s.sessionRepository.GetAll(ctx)
}

func (s *sessionService) Grant(ctx context.Context, session models.Session) (models.Session, error) {
	granted, err := s.sessionRepository.Save(ctx, session)
	if err != nil {
		return models.Session{}, fmt.Errorf("grant session: %w", err)
	}

	s.logger.Debug().
		Str("host", granted.Host).
		Str("genesisId", granted.GenesisID).
		Int("addresses", len(granted.AuthorizedAddresses)).
		Msg("session granted")

	return granted, nil
}

func (s *sessionService) RemoveByIDs(ctx context.Context, ids ...string) error {
	return s.sessionRepository.RemoveByIDs(ctx, ids...)
}

func (s *sessionService) AuthorizedAddressesForHost(ctx context.Context, host string) ([]string, error) {
	sessions, err := s.sessionRepository.FindByHost(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("authorized addresses for host: %w", err)
	}

	seen := make(map[string]struct{})
	addresses := make([]string, 0)
	for _, session := range sessions {
		for _, address := range session.AuthorizedAddresses {
			if _, ok := seen[address]; ok {
				continue
			}
			seen[address] = struct{}{}
			addresses = append(addresses, address)
		}
	}
	sort.Strings(addresses)

	return addresses, nil
}
