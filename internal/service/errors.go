// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrPasswordNotSet is returned by vault operations that require an
	// initialized vault when no password has ever been set.
	ErrPasswordNotSet = errors.New("wallet password is not set")

	// ErrInvalidPassword is returned when a supplied password fails
	// verification against the stored password tag.
	ErrInvalidPassword = errors.New("invalid wallet password")

	// ErrInvalidKeyMaterial is returned when imported private-key material
	// has the wrong length or is internally inconsistent.
	ErrInvalidKeyMaterial = errors.New("invalid private key material")

	// ErrDuplicateEvent is returned by Enqueue when a pending event with
	// the same request id already exists.
	ErrDuplicateEvent = errors.New("event with the same request id is already pending")

	// ErrEventNotPending is returned by resolution callbacks when no
	// pending event exists for the given request id.
	ErrEventNotPending = errors.New("no pending event for request id")

	// ErrNoAddressesApproved is returned by CompleteEnable when the
	// approval carries no addresses at all.
	ErrNoAddressesApproved = errors.New("no addresses were approved")

	// ErrUnknownAddress is returned by CompleteEnable when an approved
	// address does not belong to any wallet account.
	ErrUnknownAddress = errors.New("approved address is not a wallet account")
)

// GroupIDMismatchError reports a transaction batch whose declared group id
// does not match the id recomputed from the batch contents.
type GroupIDMismatchError struct {
	// ComputedGroupID is the base64-encoded recomputed group id.
	ComputedGroupID string
}

// Error implements the error interface.
func (e *GroupIDMismatchError) Error() string {
	return fmt.Sprintf("transaction group id mismatch: computed %s", e.ComputedGroupID)
}
