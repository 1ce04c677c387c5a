// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/utils"
	"github.com/MKhiriev/go-algo-wallet/models"
)

type providerService struct {
	vault         VaultService
	sessions      SessionService
	txnGroups     TxnGroupService
	events        EventQueueService
	transport     Transport
	networks      []models.Network
	wallet        config.Wallet
	uuidGenerator *utils.UUIDGenerator
	now           func() int64

	logger *logger.Logger
}

// NewProviderService returns the [ProviderService] wired over the wallet's
// other services. networks is the closed registry of supported networks.
func NewProviderService(
	vault VaultService,
	sessions SessionService,
	txnGroups TxnGroupService,
	events EventQueueService,
	transport Transport,
	networks []models.Network,
	cfg config.Wallet,
	logger *logger.Logger,
) ProviderService {
	return &providerService{
		vault:         vault,
		sessions:      sessions,
		txnGroups:     txnGroups,
		events:        events,
		transport:     transport,
		networks:      networks,
		wallet:        cfg,
		uuidGenerator: utils.NewUUIDGenerator(),
		now:           func() int64 { return time.Now().UnixMilli() },
		logger:        logger,
	}
}

func (p *providerService) HandleRequest(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error) {
	log := p.logger.GetChildLogger()
	log.Debug().
		Str("requestId", request.ID).
		Str("method", string(request.Method)).
		Str("host", request.ClientInfo.Host).
		Msg("provider request received")

	if request.ID == "" {
		return nil, fmt.Errorf("request without id cannot be answered")
	}
	if !request.Method.Valid() {
		return p.errorResponse(request, models.NewInvalidInputError(fmt.Sprintf("unknown method %q", request.Method))), nil
	}
	if request.Method != models.MethodDiscover && request.ClientInfo.Host == "" {
		return p.errorResponse(request, models.NewInvalidInputError("clientInfo.host is required")), nil
	}

	// The wire discriminator has been validated; from here on dispatch is
	// on the closed method set only.
	switch request.Method {
	case models.MethodDiscover:
		return p.handleDiscover(ctx, request)
	case models.MethodEnable:
		return p.handleEnable(ctx, tabID, request)
	case models.MethodDisable:
		return p.handleDisable(ctx, request)
	case models.MethodSignMessage:
		return p.handleSignMessage(ctx, tabID, request)
	case models.MethodSignTransactions:
		return p.handleSignTransactions(ctx, tabID, request)
	default:
		return p.errorResponse(request, models.NewInvalidInputError(fmt.Sprintf("unknown method %q", request.Method))), nil
	}
}

// resolveNetwork maps an optional genesis hash to a supported network. An
// empty hash selects the wallet's default network.
func (p *providerService) resolveNetwork(genesisHash string) (models.Network, *models.ProviderError) {
	if genesisHash == "" {
		genesisHash = p.wallet.DefaultGenesisHash
	}

	network, ok := models.FindNetworkByGenesisHash(p.networks, genesisHash)
	if !ok {
		return models.Network{}, models.NewNetworkNotSupportedError(p.supportedGenesisHashes())
	}

	return network, nil
}

func (p *providerService) supportedGenesisHashes() []string {
	hashes := make([]string, 0, len(p.networks))
	for _, network := range p.networks {
		hashes = append(hashes, network.GenesisHash)
	}
	return hashes
}

// resultResponse builds the terminal success response for request.
func (p *providerService) resultResponse(request models.RequestMessage, result any) (*models.ResponseMessage, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal %s result: %w", request.Method, err)
	}

	return &models.ResponseMessage{
		ID:        p.uuidGenerator.Generate(),
		RequestID: request.ID,
		Method:    request.Method,
		Result:    payload,
	}, nil
}

// errorResponse builds the terminal error response for request.
func (p *providerService) errorResponse(request models.RequestMessage, providerError *models.ProviderError) *models.ResponseMessage {
	return &models.ResponseMessage{
		ID:        p.uuidGenerator.Generate(),
		RequestID: request.ID,
		Method:    request.Method,
		Error:     providerError,
	}
}

// enqueueInteractive queues request for user approval. A request id that is
// already pending is dropped: the first delivery owns the prompt and the
// eventual response.
func (p *providerService) enqueueInteractive(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error) {
	err := p.events.Enqueue(ctx, models.PendingClientEvent{
		ID:      request.ID,
		Type:    request.Method,
		Request: request,
		TabID:   tabID,
	})
	if err != nil && !errors.Is(err, ErrDuplicateEvent) {
		return nil, err
	}

	return nil, nil
}

// pendingEvent loads the pending event for requestID and checks it was
// produced by the expected method.
func (p *providerService) pendingEvent(ctx context.Context, requestID string, method models.Method) (models.PendingClientEvent, error) {
	event, err := p.events.GetByID(ctx, requestID)
	if err != nil {
		return models.PendingClientEvent{}, err
	}
	if event.Type != method {
		return models.PendingClientEvent{}, fmt.Errorf("%w: %s is a %s request", ErrEventNotPending, requestID, event.Type)
	}

	return event, nil
}

// RejectPending implements [ProviderService]: an explicit user rejection
// answers the pending request with an unauthorized signer error.
func (p *providerService) RejectPending(ctx context.Context, requestID string) error {
	event, err := p.events.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	response := p.errorResponse(event.Request, models.NewUnauthorizedSignerError("", "the user rejected the request"))

	return p.events.Resolve(ctx, requestID, *response)
}
