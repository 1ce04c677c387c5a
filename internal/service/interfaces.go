// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/MKhiriev/go-algo-wallet/models"
)

// VaultService owns password lifecycle and private key custody. Private key
// material exists in plaintext only inside its method calls; everything it
// persists is sealed in keychain envelopes.
type VaultService interface {
	// HasPassword reports whether the vault has been initialized with a
	// password.
	HasPassword(ctx context.Context) (bool, error)

	// SetPassword initializes the vault password or, when currentPassword
	// is given and verifies, changes it. A password change re-encrypts
	// every stored private key with the new password atomically: all
	// envelopes are rewritten in memory first, and nothing is persisted
	// unless every one of them re-encrypted successfully.
	SetPassword(ctx context.Context, newPassword, currentPassword string) error

	// VerifyPassword reports whether candidate is the current wallet
	// password. A wrong password yields (false, nil), never an error; so
	// does an uninitialized vault.
	VerifyPassword(ctx context.Context, candidate string) (bool, error)

	// SetPrivateKey imports raw key material: either a 32-byte ed25519
	// seed or a legacy 64-byte seed ‖ public-key concatenation. The
	// material is validated, sealed under password, and upserted by
	// public key together with an account record.
	SetPrivateKey(ctx context.Context, material []byte, name, password string) (models.Account, error)

	// GetDecryptedPrivateKey returns the 32-byte seed stored for the
	// hex-encoded public key. Password verification failures surface as
	// [ErrInvalidPassword] before any store access.
	GetDecryptedPrivateKey(ctx context.Context, publicKey, password string) ([]byte, error)

	// HasPrivateKey reports whether a private key record exists for the
	// hex-encoded public key. False means the matching account, if any,
	// is watch-only.
	HasPrivateKey(ctx context.Context, publicKey string) (bool, error)

	// GenerateAccount creates a fresh ed25519 account, stores its sealed
	// private key, and returns the account record.
	GenerateAccount(ctx context.Context, name, password string) (models.Account, error)

	// ImportAccountFromMnemonic imports an account from its 25-word
	// mnemonic phrase.
	ImportAccountFromMnemonic(ctx context.Context, mnemonicPhrase, name, password string) (models.Account, error)

	// ExportMnemonic returns the 25-word mnemonic phrase of the account
	// with the given address.
	ExportMnemonic(ctx context.Context, address, password string) (string, error)

	// AddWatchAccount registers an address the wallet tracks but cannot
	// sign for.
	AddWatchAccount(ctx context.Context, address, name string) (models.Account, error)

	// ListAccounts returns every account known to the wallet.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// RemoveAccount deletes the account record and any private key record
	// for the given address.
	RemoveAccount(ctx context.Context, address string) error
}

// SessionService manages authorization grants on top of the session
// repository, preserving the one-session-per-(host, network) invariant.
type SessionService interface {
	FindByHostAndNetwork(ctx context.Context, host, genesisHash string) (models.Session, error)
	GetAll(ctx context.Context) ([]models.Session, error)

	// Grant upserts a session, refreshing its UsedAt stamp.
	Grant(ctx context.Context, session models.Session) (models.Session, error)

	RemoveByIDs(ctx context.Context, ids ...string) error

	// AuthorizedAddressesForHost returns the de-duplicated union of
	// addresses authorized for host across all of its sessions.
	AuthorizedAddressesForHost(ctx context.Context, host string) ([]string, error)
}

// TxnGroupService validates and recomputes atomic transaction group ids.
type TxnGroupService interface {
	// ComputeGroupID recomputes the group id over txns with every Group
	// field cleared, exactly as assignment-time hashing does. The input
	// slice is not modified.
	ComputeGroupID(txns []types.Transaction) (types.Digest, error)

	// VerifyTransactionGroups checks that every declared group id in txns
	// matches the id recomputed from its subgroup. Transactions with a
	// zero group are individually valid; an empty batch is valid. A
	// mismatch is reported as a [*GroupIDMismatchError].
	VerifyTransactionGroups(txns []types.Transaction) error

	// DecodeUnsignedTransaction decodes a base64-encoded msgpack unsigned
	// transaction, tolerating the "TX" domain-separation prefix.
	DecodeUnsignedTransaction(encoded string) (types.Transaction, error)
}

// EventQueueService is the durable approval queue plus the window
// orchestration around it.
type EventQueueService interface {
	// Enqueue persists event and then surfaces it: an open main window is
	// notified, otherwise a dedicated prompt window is opened. A second
	// event with the same request id is rejected with [ErrDuplicateEvent].
	Enqueue(ctx context.Context, event models.PendingClientEvent) error

	GetPending(ctx context.Context) ([]models.PendingClientEvent, error)
	GetByID(ctx context.Context, requestID string) (models.PendingClientEvent, error)

	// RegisterWindow records a window the UI shell created on its own,
	// typically its main surface. Recorded windows survive restarts and
	// take part in startup reconciliation.
	RegisterWindow(ctx context.Context, windowID, kind string) error

	// Resolve delivers response to the event's originating tab, removes
	// the queue entry, and closes the prompt window opened for it.
	Resolve(ctx context.Context, requestID string, response models.ResponseMessage) error

	// HandleWindowClosed purges the pending event tied to a prompt window
	// the user closed without deciding. No response is sent.
	HandleWindowClosed(ctx context.Context, windowID string) error

	// ReconcileOnStartup drops window records without a live window and
	// abandons the pending events tied to them.
	ReconcileOnStartup(ctx context.Context) error
}

// ProviderService is the protocol handler: it validates, authorizes and
// answers inbound provider requests.
type ProviderService interface {
	// HandleRequest processes one inbound request from tabID. It returns
	// a terminal response when the request can be answered immediately,
	// or nil after the request has been queued for interactive approval.
	HandleRequest(ctx context.Context, tabID string, request models.RequestMessage) (*models.ResponseMessage, error)

	// CompleteEnable finishes an interactive enable request with the
	// addresses the user approved. Every address must name a wallet
	// account and the list must not be empty.
	CompleteEnable(ctx context.Context, requestID string, approvedAddresses []string) error

	// CompleteSignTransactions finishes an interactive sign_transactions
	// request by signing with the wallet password the user entered.
	CompleteSignTransactions(ctx context.Context, requestID, password string) error

	// CompleteSignMessage finishes an interactive sign_message request.
	// signer overrides the requested signer when the request left it open.
	CompleteSignMessage(ctx context.Context, requestID, signer, password string) error

	// RejectPending finishes an interactive request with an unauthorized
	// signer error after an explicit user rejection.
	RejectPending(ctx context.Context, requestID string) error
}

// WindowManager abstracts the host environment's window system: opening
// and closing wallet-owned top-level windows and enumerating the ones that
// are actually open.
type WindowManager interface {
	// Open creates a window per spec and returns its window id.
	Open(ctx context.Context, spec models.WindowSpec) (string, error)

	// Close closes the window. Closing an unknown id is not an error.
	Close(ctx context.Context, windowID string) error

	// OpenWindowIDs returns the ids of all currently open wallet windows.
	OpenWindowIDs(ctx context.Context) ([]string, error)
}

// Transport delivers outbound messages: terminal responses addressed to
// one client tab and notifications broadcast to every open UI surface.
type Transport interface {
	Deliver(ctx context.Context, tabID string, message models.ResponseMessage) error
	Broadcast(ctx context.Context, notification models.UINotification) error
}
