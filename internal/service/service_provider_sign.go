// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	algocrypto "github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/models"
)

func (p *providerService) handleSignMessage(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error) {
	var params models.SignMessageParams
	if err := json.Unmarshal(request.Params, &params); err != nil || params.Message == "" {
		return p.errorResponse(request, models.NewInvalidInputError("sign_message requires a non-empty message")), nil
	}

	providerErr, err := p.authorizeMessageSigner(ctx, request.ClientInfo.Host, params.Signer)
	if err != nil {
		return nil, err
	}
	if providerErr != nil {
		return p.errorResponse(request, providerErr), nil
	}

	// Message signing always goes through the prompt: the signature needs
	// the wallet password, which only the user can supply.
	return p.enqueueInteractive(ctx, tabID, request)
}

// authorizeMessageSigner checks that the host may sign with the requested
// signer, or with at least one signable account when no signer was named.
func (p *providerService) authorizeMessageSigner(ctx context.Context, host, signer string) (*models.ProviderError, error) {
	authorized, err := p.sessions.AuthorizedAddressesForHost(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(authorized) == 0 {
		return models.NewUnauthorizedSignerError("", "host has no active session"), nil
	}

	if signer != "" {
		if !containsAddress(authorized, signer) {
			return models.NewUnauthorizedSignerError(signer, "signer is not authorized for host"), nil
		}
		signable, providerErr, err := p.isSignable(ctx, signer)
		if err != nil || providerErr != nil {
			return providerErr, err
		}
		if !signable {
			return models.NewUnauthorizedSignerError(signer, "signer is a watch-only account"), nil
		}
		return nil, nil
	}

	if _, err := p.pickSignableAddress(ctx, authorized); err != nil {
		if errors.Is(err, errNoSignableAccount) {
			return models.NewUnauthorizedSignerError("", "no signable account is authorized for host"), nil
		}
		return nil, err
	}

	return nil, nil
}

// CompleteSignMessage implements [ProviderService]. A wrong password
// surfaces as [ErrInvalidPassword] and leaves the event pending so the
// user can retry.
func (p *providerService) CompleteSignMessage(ctx context.Context, requestID, signer, password string) error {
	event, err := p.pendingEvent(ctx, requestID, models.MethodSignMessage)
	if err != nil {
		return err
	}

	var params models.SignMessageParams
	if err := json.Unmarshal(event.Request.Params, &params); err != nil {
		return fmt.Errorf("reparse sign_message params: %w", err)
	}

	authorized, err := p.sessions.AuthorizedAddressesForHost(ctx, event.Request.ClientInfo.Host)
	if err != nil {
		return err
	}

	chosen := signer
	if chosen == "" {
		chosen = params.Signer
	}
	if chosen == "" {
		if chosen, err = p.pickSignableAddress(ctx, authorized); err != nil {
			return err
		}
	}
	if !containsAddress(authorized, chosen) {
		return p.events.Resolve(ctx, requestID,
			*p.errorResponse(event.Request, models.NewUnauthorizedSignerError(chosen, "signer is not authorized for host")))
	}

	// The signer may have lost its key since the request was enqueued
	// (account removed, or re-imported as watch-only).
	signable, providerErr, err := p.isSignable(ctx, chosen)
	if err != nil {
		return err
	}
	if providerErr != nil {
		return p.events.Resolve(ctx, requestID, *p.errorResponse(event.Request, providerErr))
	}
	if !signable {
		return p.events.Resolve(ctx, requestID,
			*p.errorResponse(event.Request, models.NewUnauthorizedSignerError(chosen, "signer has no signing key")))
	}

	publicKey, err := publicKeyHexForAddress(chosen)
	if err != nil {
		return err
	}
	seed, err := p.vault.GetDecryptedPrivateKey(ctx, publicKey, password)
	if err != nil {
		return err
	}

	signature, err := algocrypto.SignBytes(ed25519.NewKeyFromSeed(seed), []byte(params.Message))
	if err != nil {
		return fmt.Errorf("sign message: %w", err)
	}

	response, err := p.resultResponse(event.Request, models.SignMessageResult{
		Signature: base64.StdEncoding.EncodeToString(signature[:]),
		Signer:    chosen,
	})
	if err != nil {
		return err
	}

	return p.events.Resolve(ctx, requestID, *response)
}

func (p *providerService) handleSignTransactions(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error) {
	plan, providerErr, err := p.planTransactionSigning(ctx, request)
	if err != nil {
		return nil, err
	}
	if providerErr != nil {
		return p.errorResponse(request, providerErr), nil
	}

	// The session served this request; refresh its UsedAt stamp.
	if _, err := p.sessions.Grant(ctx, plan.session); err != nil {
		return nil, err
	}

	return p.enqueueInteractive(ctx, tabID, request)
}

// CompleteSignTransactions implements [ProviderService]. The signing plan
// is rebuilt from scratch: sessions or accounts may have changed while the
// request sat in the queue, and a request that is no longer authorized
// resolves with the matching protocol error instead of signatures.
func (p *providerService) CompleteSignTransactions(ctx context.Context, requestID, password string) error {
	event, err := p.pendingEvent(ctx, requestID, models.MethodSignTransactions)
	if err != nil {
		return err
	}

	plan, providerErr, err := p.planTransactionSigning(ctx, event.Request)
	if err != nil {
		return err
	}
	if providerErr != nil {
		return p.events.Resolve(ctx, requestID, *p.errorResponse(event.Request, providerErr))
	}

	result := make(models.SignTransactionsResult, len(plan.slots))
	for i, slot := range plan.slots {
		if !slot.sign {
			continue
		}

		seed, err := p.vault.GetDecryptedPrivateKey(ctx, slot.publicKey, password)
		if err != nil {
			return err
		}

		_, signedBytes, err := algocrypto.SignTransaction(ed25519.NewKeyFromSeed(seed), plan.txns[i])
		if err != nil {
			return fmt.Errorf("sign transaction %d: %w", i, err)
		}

		encoded := base64.StdEncoding.EncodeToString(signedBytes)
		result[i] = &encoded
	}

	response, err := p.resultResponse(event.Request, result)
	if err != nil {
		return err
	}

	return p.events.Resolve(ctx, requestID, *response)
}

// signingSlot is the per-transaction outcome of signing-plan validation:
// either the wallet signs with signer's key, or the result slot stays null.
type signingSlot struct {
	sign      bool
	signer    string
	publicKey string
}

type transactionSigningPlan struct {
	network models.Network
	session models.Session
	txns    []types.Transaction
	slots   []signingSlot
}

// planTransactionSigning runs the full validation pipeline over a
// sign_transactions request: structural validation, network validation,
// group-id validation, then authorization. The first failing stage yields
// the protocol error for the terminal response.
func (p *providerService) planTransactionSigning(ctx context.Context, request models.RequestMessage) (transactionSigningPlan, *models.ProviderError, error) {
	var plan transactionSigningPlan

	var params models.SignTransactionsParams
	if err := json.Unmarshal(request.Params, &params); err != nil || len(params.Txns) == 0 {
		return plan, models.NewInvalidInputError("sign_transactions requires at least one transaction"), nil
	}

	plan.txns = make([]types.Transaction, len(params.Txns))
	plan.slots = make([]signingSlot, len(params.Txns))
	genesisHash := ""
	for i, input := range params.Txns {
		txn, err := p.txnGroups.DecodeUnsignedTransaction(input.Txn)
		if err != nil {
			return plan, models.NewInvalidInputError(fmt.Sprintf("transaction %d is not a valid encoded transaction", i)), nil
		}
		plan.txns[i] = txn

		hash := base64.StdEncoding.EncodeToString(txn.GenesisHash[:])
		if genesisHash == "" {
			genesisHash = hash
		} else if genesisHash != hash {
			return plan, models.NewInvalidInputError("transactions target more than one network"), nil
		}

		slot, providerErr := signingSlotForInput(txn, input)
		if providerErr != nil {
			return plan, providerErr, nil
		}
		plan.slots[i] = slot
	}

	network, providerErr := p.resolveNetwork(genesisHash)
	if providerErr != nil {
		return plan, providerErr, nil
	}
	plan.network = network

	if err := p.txnGroups.VerifyTransactionGroups(plan.txns); err != nil {
		var mismatch *GroupIDMismatchError
		if errors.As(err, &mismatch) {
			return plan, models.NewInvalidGroupIDError(mismatch.ComputedGroupID, "declared group id does not match the transaction group"), nil
		}
		return plan, nil, err
	}

	session, err := p.sessions.FindByHostAndNetwork(ctx, request.ClientInfo.Host, network.GenesisHash)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return plan, models.NewUnauthorizedSignerError("", "host has no session on the target network"), nil
	case err != nil:
		return plan, nil, err
	}
	plan.session = session

	signing := 0
	for _, slot := range plan.slots {
		if !slot.sign {
			continue
		}
		signing++

		if !containsAddress(session.AuthorizedAddresses, slot.signer) {
			return plan, models.NewUnauthorizedSignerError(slot.signer, "signer is not authorized for host"), nil
		}
		signable, providerErr, err := p.isSignable(ctx, slot.signer)
		if err != nil || providerErr != nil {
			return plan, providerErr, err
		}
		if !signable {
			return plan, models.NewUnauthorizedSignerError(slot.signer, "signer is a watch-only account"), nil
		}
	}
	if signing == 0 {
		return plan, models.NewInvalidInputError("no transaction in the batch is signable by this wallet"), nil
	}

	return plan, nil, nil
}

// signingSlotForInput interprets the optional signers list of one input:
// absent means sign with the sender's key, empty means the wallet must not
// sign this slot, and a single entry names the signer explicitly.
func signingSlotForInput(txn types.Transaction, input models.TxnInput) (signingSlot, *models.ProviderError) {
	sender := txn.Sender.String()

	if input.Signers == nil {
		return signingSlot{sign: true, signer: sender, publicKey: hex.EncodeToString(txn.Sender[:])}, nil
	}

	signers := *input.Signers
	switch len(signers) {
	case 0:
		return signingSlot{}, nil
	case 1:
		if signers[0] != sender {
			return signingSlot{}, models.NewUnauthorizedSignerError(signers[0], "signer does not match the transaction sender")
		}
		return signingSlot{sign: true, signer: sender, publicKey: hex.EncodeToString(txn.Sender[:])}, nil
	default:
		return signingSlot{}, models.NewInvalidInputError("multiple signers per transaction are not supported")
	}
}

// errNoSignableAccount is internal to signer selection.
var errNoSignableAccount = errors.New("no signable account")

// pickSignableAddress returns the first address in authorized that has a
// stored private key.
func (p *providerService) pickSignableAddress(ctx context.Context, authorized []string) (string, error) {
	for _, address := range authorized {
		signable, providerErr, err := p.isSignable(ctx, address)
		if err != nil {
			return "", err
		}
		if providerErr != nil {
			continue
		}
		if signable {
			return address, nil
		}
	}
	return "", errNoSignableAccount
}

// isSignable reports whether the wallet holds a private key for address.
// An address that does not decode yields an invalid-input protocol error.
func (p *providerService) isSignable(ctx context.Context, address string) (bool, *models.ProviderError, error) {
	publicKey, err := publicKeyHexForAddress(address)
	if err != nil {
		return false, models.NewInvalidInputError(fmt.Sprintf("malformed address %q", address)), nil
	}

	has, err := p.vault.HasPrivateKey(ctx, publicKey)
	if err != nil {
		return false, nil, err
	}
	return has, nil, nil
}

func publicKeyHexForAddress(address string) (string, error) {
	decoded, err := types.DecodeAddress(address)
	if err != nil {
		return "", fmt.Errorf("decode address: %w", err)
	}
	return hex.EncodeToString(decoded[:]), nil
}

func containsAddress(addresses []string, address string) bool {
	for _, candidate := range addresses {
		if candidate == address {
			return true
		}
	}
	return false
}
