// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// Keychain owns the password-based encryption scheme of the credential
// vault. It knows nothing about storage, accounts, or the provider
// protocol; its single job is turning a password into key material and
// sealing/opening envelopes with it.
//
// Envelope layout (fixed offsets, packed into one opaque buffer):
//
//	nonce (12 bytes) ‖ salt (16 bytes) ‖ AES-256-GCM ciphertext
//
// Every Encrypt call draws a fresh salt and nonce from the OS CSPRNG, so
// a nonce is never reused and two envelopes of the same plaintext under
// the same password are unlinkable.
type Keychain interface {
	// DeriveKey derives the 256-bit encryption key for (password, salt)
	// with a memory-hard KDF. Deterministic: the same inputs always yield
	// the same key; different salts yield unrelated keys.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// Encrypt seals plaintext under password into a fresh envelope.
	// Returns [ErrEncryption] if key derivation or sealing fails.
	Encrypt(plaintext []byte, password string) ([]byte, error)

	// Decrypt opens an envelope produced by Encrypt. Returns
	// [ErrDecryption] if the envelope is malformed (wrong lengths) or
	// authentication fails (wrong password or corrupted data); it never
	// returns a partially decrypted result.
	Decrypt(envelope []byte, password string) ([]byte, error)
}
