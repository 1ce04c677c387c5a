// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ErrorCode is the machine-readable kind of a ProviderError.
type ErrorCode string

const (
	// ErrCodeInvalidInput marks structurally invalid requests: missing
	// required parameters, undecodable transactions, mixed-network groups.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeInvalidGroupID marks transaction batches whose declared group
	// id does not match the recomputed one.
	ErrCodeInvalidGroupID ErrorCode = "INVALID_GROUP_ID"

	// ErrCodeNetworkNotSupported marks requests targeting a genesis hash
	// the wallet does not recognise or has disabled.
	ErrCodeNetworkNotSupported ErrorCode = "NETWORK_NOT_SUPPORTED"

	// ErrCodeUnauthorizedSigner marks signing requests from hosts without
	// a session, for addresses outside the authorized set, or for
	// watch-only accounts.
	ErrCodeUnauthorizedSigner ErrorCode = "UNAUTHORIZED_SIGNER"
)

// ProviderError is the structured error carried in a ResponseMessage. It is
// a plain serializable value: a machine-readable code, a human-readable
// message, and code-specific context fields. It never carries key material.
type ProviderError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`

	// GenesisHashes lists the supported genesis hashes. Set only for
	// ErrCodeNetworkNotSupported.
	GenesisHashes []string `json:"genesisHashes,omitempty"`

	// ComputedGroupID is the recomputed group id (base64). Set only for
	// ErrCodeInvalidGroupID.
	ComputedGroupID string `json:"computedGroupId,omitempty"`

	// Signer is the offending signer address. Set for
	// ErrCodeUnauthorizedSigner when a specific signer was requested.
	Signer string `json:"signer,omitempty"`
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInputError builds an ErrCodeInvalidInput error.
func NewInvalidInputError(message string) *ProviderError {
	return &ProviderError{Code: ErrCodeInvalidInput, Message: message}
}

// NewInvalidGroupIDError builds an ErrCodeInvalidGroupID error carrying the
// recomputed group id.
func NewInvalidGroupIDError(computedGroupID, message string) *ProviderError {
	return &ProviderError{
		Code:            ErrCodeInvalidGroupID,
		Message:         message,
		ComputedGroupID: computedGroupID,
	}
}

// NewNetworkNotSupportedError builds an ErrCodeNetworkNotSupported error
// listing the genesis hashes the wallet does support.
func NewNetworkNotSupportedError(genesisHashes []string) *ProviderError {
	return &ProviderError{
		Code:          ErrCodeNetworkNotSupported,
		Message:       "network not supported",
		GenesisHashes: genesisHashes,
	}
}

// NewUnauthorizedSignerError builds an ErrCodeUnauthorizedSigner error.
// signer may be empty when no specific address was requested.
func NewUnauthorizedSignerError(signer, message string) *ProviderError {
	return &ProviderError{
		Code:    ErrCodeUnauthorizedSigner,
		Message: message,
		Signer:  signer,
	}
}
