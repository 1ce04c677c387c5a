// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Envelope layout constants. Decrypt unpacks by these fixed offsets, so
// they are part of the stored data format and must never change for
// existing records.
const (
	nonceLength = 12
	saltLength  = 16
	keyLength   = 32 // 256 bits
)

// keychain is the private implementation of [Keychain].
type keychain struct {
	// scrypt tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target, but note that changing them makes
	// previously written envelopes underivable.
	scryptN int
	scryptR int
	scryptP int
}

// NewKeychain constructs a [Keychain] with interactive-login scrypt
// parameters:
//   - CPU/memory cost: N = 16384 (2^14)
//   - block size:      r = 8
//   - parallelism:     p = 1
//   - key length:      32 bytes (256 bits)
func NewKeychain() Keychain {
	return &keychain{
		scryptN: 16384,
		scryptR: 8,
		scryptP: 1,
	}
}

// DeriveKey implements [Keychain]. The password is pre-hashed with SHA-256
// so the KDF input has a fixed length regardless of password size, then
// stretched with scrypt under the parameters stored in the receiver.
func (k *keychain) DeriveKey(password string, salt []byte) ([]byte, error) {
	seed := sha256.Sum256([]byte(password))

	key, err := scrypt.Key(seed[:], salt, k.scryptN, k.scryptR, k.scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	return key, nil
}

// Encrypt implements [Keychain]. It draws a fresh salt and nonce from the
// OS CSPRNG, derives the key, seals the plaintext with AES-256-GCM and
// packs the result as nonce ‖ salt ‖ ciphertext.
func (k *keychain) Encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %w", ErrEncryption, err)
	}

	key, err := k.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	// Pack nonce and salt ahead of the ciphertext so Decrypt can unpack
	// them by fixed offsets.
	envelope := make([]byte, 0, nonceLength+saltLength+len(plaintext)+gcm.Overhead())
	envelope = append(envelope, nonce...)
	envelope = append(envelope, salt...)
	envelope = gcm.Seal(envelope, nonce, plaintext, nil)

	return envelope, nil
}

// Decrypt implements [Keychain]. It unpacks nonce and salt by the fixed
// offsets, re-derives the key, and opens the authenticated ciphertext.
// An envelope too short to hold the header is [ErrMalformedData]; an
// authentication failure almost always means the caller supplied the
// wrong password.
func (k *keychain) Decrypt(envelope []byte, password string) ([]byte, error) {
	if len(envelope) < nonceLength+saltLength {
		return nil, fmt.Errorf("%w: envelope too short", ErrMalformedData)
	}

	nonce := envelope[:nonceLength]
	salt := envelope[nonceLength : nonceLength+saltLength]
	ciphertext := envelope[nonceLength+saltLength:]

	key, err := k.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, nonceLength)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
