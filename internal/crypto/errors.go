// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors reported by the keychain. Callers should use [errors.Is]
// to match against these values; none of them ever carries key material.
var (
	// ErrEncryption is returned when sealing an envelope fails (key
	// derivation, cipher construction, or nonce generation).
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption is returned when the authentication tag of an envelope
	// does not verify (wrong password or corrupted ciphertext).
	ErrDecryption = errors.New("decryption failed")

	// ErrMalformedData is returned when an envelope is structurally
	// invalid: too short to even hold the fixed nonce and salt header.
	ErrMalformedData = errors.New("malformed envelope")
)
