// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

func (p *providerService) handleDiscover(ctx context.Context, request models.RequestMessage) (*models.ResponseMessage, error) {
	// Discovery is public: no session, no authorization, no prompt.
	summaries := make([]models.NetworkSummary, 0, len(p.networks))
	for _, network := range p.networks {
		summaries = append(summaries, models.NetworkSummary{
			GenesisHash: network.GenesisHash,
			GenesisID:   network.GenesisID,
			Methods:     network.Methods,
		})
	}

	return p.resultResponse(request, models.DiscoverResult{
		Host:     p.wallet.Host,
		Icon:     p.wallet.Icon,
		Name:     p.wallet.Name,
		Networks: summaries,
	})
}

func (p *providerService) handleEnable(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error) {
	var params models.EnableParams
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return p.errorResponse(request, models.NewInvalidInputError("malformed enable params")), nil
		}
	}

	network, providerErr := p.resolveNetwork(params.GenesisHash)
	if providerErr != nil {
		return p.errorResponse(request, providerErr), nil
	}

	host := request.ClientInfo.Host

	session, err := p.sessions.FindByHostAndNetwork(ctx, host, network.GenesisHash)
	switch {
	case err == nil:
		// A live grant answers immediately; re-saving refreshes UsedAt.
		if session, err = p.sessions.Grant(ctx, session); err != nil {
			return nil, err
		}
		return p.enableResult(ctx, request, session)
	case errors.Is(err, store.ErrSessionNotFound):
		return p.enqueueInteractive(ctx, tabID, request)
	default:
		return nil, err
	}
}

// CompleteEnable implements [ProviderService]. The approved list must be
// non-empty and every address must belong to a wallet account; a bad list
// is rejected with [ErrNoAddressesApproved] or [ErrUnknownAddress] and the
// event stays pending so the user can amend the selection.
func (p *providerService) CompleteEnable(ctx context.Context, requestID string, approvedAddresses []string) error {
	event, err := p.pendingEvent(ctx, requestID, models.MethodEnable)
	if err != nil {
		return err
	}

	if len(approvedAddresses) == 0 {
		return ErrNoAddressesApproved
	}
	names, err := p.accountNames(ctx)
	if err != nil {
		return err
	}
	for _, address := range approvedAddresses {
		if _, known := names[address]; !known {
			return fmt.Errorf("%w: %s", ErrUnknownAddress, address)
		}
	}

	var params models.EnableParams
	if len(event.Request.Params) > 0 {
		if err := json.Unmarshal(event.Request.Params, &params); err != nil {
			return fmt.Errorf("reparse enable params: %w", err)
		}
	}
	network, providerErr := p.resolveNetwork(params.GenesisHash)
	if providerErr != nil {
		return p.events.Resolve(ctx, requestID, *p.errorResponse(event.Request, providerErr))
	}

	session, err := p.sessions.Grant(ctx, models.Session{
		ID:                  p.uuidGenerator.Generate(),
		Host:                event.Request.ClientInfo.Host,
		AppName:             event.Request.ClientInfo.AppName,
		Description:         event.Request.ClientInfo.Description,
		IconURL:             event.Request.ClientInfo.IconURL,
		GenesisHash:         network.GenesisHash,
		GenesisID:           network.GenesisID,
		AuthorizedAddresses: approvedAddresses,
		CreatedAt:           p.now(),
	})
	if err != nil {
		return err
	}

	response, err := p.enableResult(ctx, event.Request, session)
	if err != nil {
		return err
	}
	if err := p.events.Resolve(ctx, requestID, *response); err != nil {
		return err
	}

	return p.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationSessionsChanged})
}

// enableResult builds the terminal enable response for a granted session,
// resolving account display names from the wallet's registry.
func (p *providerService) enableResult(ctx context.Context, request models.RequestMessage, session models.Session) (*models.ResponseMessage, error) {
	names, err := p.accountNames(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]models.AccountSummary, 0, len(session.AuthorizedAddresses))
	for _, address := range session.AuthorizedAddresses {
		accounts = append(accounts, models.AccountSummary{
			Address: address,
			Name:    names[address],
		})
	}

	return p.resultResponse(request, models.EnableResult{
		Accounts:    accounts,
		GenesisHash: session.GenesisHash,
		GenesisID:   session.GenesisID,
		SessionID:   session.ID,
	})
}

func (p *providerService) accountNames(ctx context.Context) (map[string]string, error) {
	accounts, err := p.vault.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	names := make(map[string]string, len(accounts))
	for _, account := range accounts {
		names[account.Address] = account.Name
	}
	return names, nil
}

func (p *providerService) handleDisable(ctx context.Context, request models.RequestMessage) (*models.ResponseMessage, error) {
	var params models.DisableParams
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return p.errorResponse(request, models.NewInvalidInputError("malformed disable params")), nil
		}
	}

	network, providerErr := p.resolveNetwork(params.GenesisHash)
	if providerErr != nil {
		return p.errorResponse(request, providerErr), nil
	}

	removed := make([]string, 0, 1)
	session, err := p.sessions.FindByHostAndNetwork(ctx, request.ClientInfo.Host, network.GenesisHash)
	switch {
	case err == nil:
		if sessionTargeted(session.ID, params.SessionIDs) {
			if err := p.sessions.RemoveByIDs(ctx, session.ID); err != nil {
				return nil, err
			}
			removed = append(removed, session.ID)
		}
	case !errors.Is(err, store.ErrSessionNotFound):
		return nil, err
	}

	if len(removed) > 0 {
		if err := p.transport.Broadcast(ctx, models.UINotification{Type: models.NotificationSessionsChanged}); err != nil {
			return nil, err
		}
	}

	return p.resultResponse(request, models.DisableResult{
		GenesisHash: network.GenesisHash,
		GenesisID:   network.GenesisID,
		SessionIDs:  removed,
	})
}

// sessionTargeted reports whether id is covered by an optional explicit
// session-id filter. An empty filter targets every session.
func sessionTargeted(id string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, candidate := range filter {
		if candidate == id {
			return true
		}
	}
	return false
}
