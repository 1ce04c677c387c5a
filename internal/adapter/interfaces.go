// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the wallet daemon.
//
// The primary abstraction is [DaemonAdapter], which decouples UI shells and
// tooling from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDaemonAdapter]) over the daemon's bridge API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-algo-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/daemon_adapter_mock.go -package=mock

// EventDecision carries the user's decision data for one pending event.
// Which fields matter depends on the event's method: enable uses Addresses,
// the signing methods use Password and optionally Signer.
type EventDecision struct {
	Addresses []string `json:"addresses,omitempty"`
	Signer    string   `json:"signer,omitempty"`
	Password  string   `json:"password,omitempty"`
}

// CreateAccountRequest covers every way an account enters the wallet. At
// most one of Mnemonic, PrivateKey and Address may be set; with none set a
// fresh account is generated.
type CreateAccountRequest struct {
	Name       string `json:"name,omitempty"`
	Password   string `json:"password,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
	Address    string `json:"address,omitempty"`
}

// DaemonAdapter defines transport-agnostic communication with the wallet
// daemon's bridge API. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in this
// package.
type DaemonAdapter interface {
	// RegisterWindow announces a window the shell created on its own, such
	// as its main surface, so the daemon can track it.
	RegisterWindow(ctx context.Context, windowID, kind string) error

	// ReportWindowClosed tells the daemon that the shell closed a window.
	// Closing a prompt window abandons the pending event tied to it.
	ReportWindowClosed(ctx context.Context, windowID string) error

	// PollNotification long-polls the daemon for the next UI notification
	// addressed to surfaceID. The second return value is false when the
	// poll timed out with nothing to deliver.
	PollNotification(ctx context.Context, surfaceID string) (models.UINotification, bool, error)

	// ListPendingEvents returns every event waiting for user approval.
	ListPendingEvents(ctx context.Context) ([]models.PendingClientEvent, error)

	// ApproveEvent resolves the pending event identified by requestID with
	// the user's decision. Returns [ErrUnauthorized] (wrapped) when the
	// wallet password in the decision is wrong; the event stays pending.
	ApproveEvent(ctx context.Context, requestID string, decision EventDecision) error

	// RejectEvent resolves the pending event with a rejection response.
	RejectEvent(ctx context.Context, requestID string) error

	// ListSessions returns every active authorization session.
	ListSessions(ctx context.Context) ([]models.Session, error)

	// RemoveSessions revokes the sessions with the given ids.
	RemoveSessions(ctx context.Context, ids []string) error

	// SetPassword initializes or, when currentPassword is given, changes
	// the wallet password.
	SetPassword(ctx context.Context, newPassword, currentPassword string) error

	// VerifyPassword reports whether password is the current wallet
	// password.
	VerifyPassword(ctx context.Context, password string) (bool, error)

	// ListAccounts returns every account known to the wallet.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// CreateAccount generates, imports, or registers an account per req.
	CreateAccount(ctx context.Context, req CreateAccountRequest) (models.Account, error)

	// ExportMnemonic returns the 25-word mnemonic phrase of the account
	// with the given address.
	ExportMnemonic(ctx context.Context, address, password string) (string, error)

	// RemoveAccount deletes the account with the given address.
	RemoveAccount(ctx context.Context, address string) error
}
