// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kc := NewKeychain()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := kc.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kc.DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	kc := NewKeychain()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1, err := kc.DeriveKey(password, salt1)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kc.DeriveKey(password, salt2)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestEncrypt_DecryptRoundTrip(t *testing.T) {
	kc := NewKeychain()

	plaintext := []byte("thirty-two bytes of seed material")
	password := "hunter2 but longer"

	envelope, err := kc.Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := kc.Decrypt(envelope, password)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round-trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncrypt_FreshSaltAndNonceEachCall(t *testing.T) {
	kc := NewKeychain()

	plaintext := []byte("same plaintext")
	password := "same password"

	e1, err := kc.Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	e2, err := kc.Encrypt(plaintext, password)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(e1[:nonceLength], e2[:nonceLength]) {
		t.Fatalf("expected nonces to differ between calls")
	}
	if bytes.Equal(e1[nonceLength:nonceLength+saltLength], e2[nonceLength:nonceLength+saltLength]) {
		t.Fatalf("expected salts to differ between calls")
	}
	if bytes.Equal(e1, e2) {
		t.Fatalf("expected envelopes to differ between calls")
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	kc := NewKeychain()

	envelope, err := kc.Encrypt([]byte("secret"), "password one")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = kc.Decrypt(envelope, "password two")
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got: %v", err)
	}
}

func TestDecrypt_TruncatedEnvelope(t *testing.T) {
	kc := NewKeychain()

	_, err := kc.Decrypt(bytes.Repeat([]byte{0x00}, nonceLength+saltLength-1), "any")
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData for short envelope, got: %v", err)
	}
}

func TestDecrypt_CorruptedCiphertext(t *testing.T) {
	kc := NewKeychain()

	envelope, err := kc.Encrypt([]byte("secret"), "password")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	envelope[len(envelope)-1] ^= 0xFF

	_, err = kc.Decrypt(envelope, "password")
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption for corrupted data, got: %v", err)
	}
}
