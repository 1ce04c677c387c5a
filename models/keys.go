// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Private-key record format discriminators. The version of a record decides
// how its decrypted payload is interpreted on read.
const (
	// PrivateKeyRecordVersionLegacy marks records whose decrypted payload is
	// a 64-byte ed25519 private key (seed ‖ public key). Read paths must
	// slice it down to the 32-byte seed.
	PrivateKeyRecordVersionLegacy = 0

	// PrivateKeyRecordVersionCurrent marks records whose decrypted payload
	// is the raw 32-byte ed25519 seed.
	PrivateKeyRecordVersionCurrent = 1
)

// PrivateKeyRecord represents custody of one signing key. The private key
// material is stored only inside EncryptedPrivateKey, an authenticated
// encryption envelope that can be opened exclusively with the current
// wallet password.
type PrivateKeyRecord struct {
	// ID is the unique identifier of the record (UUIDv7). Stable across
	// password changes; only the envelope is rewritten.
	ID string `json:"id"`

	// PublicKey is the hex-encoded ed25519 public key. Records are keyed
	// by public key in the store, so it doubles as the upsert key.
	PublicKey string `json:"publicKey"`

	// EncryptedPrivateKey is the opaque envelope nonce ‖ salt ‖ ciphertext
	// produced by the vault.
	EncryptedPrivateKey []byte `json:"encryptedPrivateKey"`

	// PasswordTagID references the PasswordTag that was current when this
	// envelope was written.
	PasswordTagID string `json:"passwordTagId"`

	// Version is the payload format discriminator, one of the
	// PrivateKeyRecordVersion* constants.
	Version int `json:"version"`

	// CreatedAt is the record creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the time of the last envelope rewrite in Unix
	// milliseconds.
	UpdatedAt int64 `json:"updatedAt"`
}

// PasswordTag is the password verification artifact: a fixed, known
// plaintext encrypted under the current wallet password. Decrypting it with
// a candidate password and comparing the result to the known plaintext is
// the only way the wallet verifies a password — the password itself is
// never persisted in any form.
//
// Exactly one PasswordTag exists once the vault is initialized.
type PasswordTag struct {
	// ID is the unique identifier of the tag (UUIDv7). Rewritten together
	// with the tag on every password change.
	ID string `json:"id"`

	// EncryptedTag is the known plaintext sealed in a vault envelope.
	EncryptedTag []byte `json:"encryptedTag"`

	// Version is the tag format version, reserved for future envelope
	// format changes.
	Version int `json:"version"`
}

// Account represents an account known to the wallet: an address plus
// display metadata. Whether the account can sign is not stored here — an
// account with no matching PrivateKeyRecord is watch-only.
type Account struct {
	// Address is the Algorand address string derived from PublicKey.
	Address string `json:"address"`

	// PublicKey is the hex-encoded ed25519 public key.
	PublicKey string `json:"publicKey"`

	// Name is an optional user-assigned display name.
	Name string `json:"name,omitempty"`

	// CreatedAt is the record creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}
