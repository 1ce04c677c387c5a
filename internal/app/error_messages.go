// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// wallet daemon's handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidWalletPassword is returned when the supplied wallet
	// password does not verify against the vault's password tag.
	MsgInvalidWalletPassword = "invalid wallet password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoPendingEvent is returned when the request id names no event in
	// the approval queue - the event was already resolved or abandoned.
	MsgNoPendingEvent = "no pending event for request id"

	// MsgAccountNotFound is returned when the address names no account
	// known to the wallet.
	MsgAccountNotFound = "account not found"

	// MsgWindowIDRequired is returned when a window registration carries
	// no window id.
	MsgWindowIDRequired = "window id is required"

	// MsgSessionIDsRequired is returned when a session revocation request
	// contains an empty id list.
	MsgSessionIDsRequired = "session ids are required"

	// MsgNewPasswordRequired is returned when a password change request
	// carries an empty new password.
	MsgNewPasswordRequired = "new password is required"
)
