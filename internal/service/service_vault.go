// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	algocrypto "github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/crypto"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/internal/utils"
	"github.com/MKhiriev/go-algo-wallet/models"
)

const (
	ed25519SeedLength      = 32
	legacyPrivateKeyLength = 64 // seed ‖ public key
)

type vaultService struct {
	keychain              crypto.Keychain
	privateKeyRepository  store.PrivateKeyRepository
	passwordTagRepository store.PasswordTagRepository
	accountRepository     store.AccountRepository
	uuidGenerator         *utils.UUIDGenerator
	passwordTagPlaintext  []byte
	now                   func() int64

	logger *logger.Logger
}

// NewVaultService returns a [VaultService] sealing key material with the
// given keychain. The password verification tag plaintext comes from the
// wallet configuration and must stay stable for the installation lifetime.
func NewVaultService(
	keychain crypto.Keychain,
	storages *store.Storages,
	cfg config.Wallet,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		keychain:              keychain,
		privateKeyRepository:  storages.PrivateKeys,
		passwordTagRepository: storages.PasswordTags,
		accountRepository:     storages.Accounts,
		uuidGenerator:         utils.NewUUIDGenerator(),
		passwordTagPlaintext:  []byte(cfg.TagPlaintext),
		now:                   func() int64 { return time.Now().UnixMilli() },
		logger:                logger,
	}
}

func (v *vaultService) HasPassword(ctx context.Context) (bool, error) {
	_, err := v.passwordTagRepository.Get(ctx)
	switch {
	case errors.Is(err, store.ErrPasswordTagNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("has password: %w", err)
	}

	return true, nil
}

func (v *vaultService) SetPassword(ctx context.Context, newPassword, currentPassword string) error {
	tag, err := v.passwordTagRepository.Get(ctx)
	switch {
	case errors.Is(err, store.ErrPasswordTagNotFound):
		return v.initializePassword(ctx, newPassword)
	case err != nil:
		return fmt.Errorf("set password: %w", err)
	}

	return v.changePassword(ctx, tag, newPassword, currentPassword)
}

// initializePassword handles the first-time flow: any stray key records
// from a wiped tag are unreadable forever, so they are purged before the
// fresh tag is written.
func (v *vaultService) initializePassword(ctx context.Context, newPassword string) error {
	if err := v.privateKeyRepository.RemoveAll(ctx); err != nil {
		return fmt.Errorf("purge stray key records: %w", err)
	}

	encryptedTag, err := v.keychain.Encrypt(v.passwordTagPlaintext, newPassword)
	if err != nil {
		return fmt.Errorf("seal password tag: %w", err)
	}

	_, err = v.passwordTagRepository.Save(ctx, models.PasswordTag{
		ID:           v.uuidGenerator.Generate(),
		EncryptedTag: encryptedTag,
		Version:      1,
	})
	if err != nil {
		return fmt.Errorf("save password tag: %w", err)
	}

	v.logger.Info().Msg("wallet password initialized")

	return nil
}

// changePassword re-keys the vault. Every envelope is decrypted with the
// current password and re-sealed with the new one fully in memory; nothing
// is persisted until all of them re-encrypted successfully, so a failure
// partway leaves the vault untouched.
func (v *vaultService) changePassword(ctx context.Context, tag models.PasswordTag, newPassword, currentPassword string) error {
	if !v.tagMatches(tag, currentPassword) {
		return ErrInvalidPassword
	}

	records, err := v.privateKeyRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load key records: %w", err)
	}

	newTag := models.PasswordTag{
		ID:      v.uuidGenerator.Generate(),
		Version: tag.Version,
	}
	newTag.EncryptedTag, err = v.keychain.Encrypt(v.passwordTagPlaintext, newPassword)
	if err != nil {
		return fmt.Errorf("seal password tag: %w", err)
	}

	now := v.now()
	rekeyed := make([]models.PrivateKeyRecord, 0, len(records))
	for _, record := range records {
		payload, err := v.keychain.Decrypt(record.EncryptedPrivateKey, currentPassword)
		if err != nil {
			return fmt.Errorf("open key record %s: %w", record.PublicKey, err)
		}

		record.EncryptedPrivateKey, err = v.keychain.Encrypt(payload, newPassword)
		if err != nil {
			return fmt.Errorf("reseal key record %s: %w", record.PublicKey, err)
		}
		record.PasswordTagID = newTag.ID
		record.UpdatedAt = now

		rekeyed = append(rekeyed, record)
	}

	if _, err := v.passwordTagRepository.Save(ctx, newTag); err != nil {
		return fmt.Errorf("save password tag: %w", err)
	}
	for _, record := range rekeyed {
		if _, err := v.privateKeyRepository.Save(ctx, record); err != nil {
			return fmt.Errorf("save key record %s: %w", record.PublicKey, err)
		}
	}

	v.logger.Info().Int("records", len(rekeyed)).Msg("wallet password changed")

	return nil
}

func (v *vaultService) VerifyPassword(ctx context.Context, candidate string) (bool, error) {
	tag, err := v.passwordTagRepository.Get(ctx)
	switch {
	case errors.Is(err, store.ErrPasswordTagNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("verify password: %w", err)
	}

	return v.tagMatches(tag, candidate), nil
}

// tagMatches reports whether candidate opens the tag envelope to the known
// plaintext. Any decryption failure means a wrong password.
func (v *vaultService) tagMatches(tag models.PasswordTag, candidate string) bool {
	plaintext, err := v.keychain.Decrypt(tag.EncryptedTag, candidate)
	if err != nil {
		return false
	}

	return bytes.Equal(plaintext, v.passwordTagPlaintext)
}

// requirePassword verifies password against the stored tag, failing with
// [ErrPasswordNotSet] on an uninitialized vault and [ErrInvalidPassword]
// on a mismatch.
func (v *vaultService) requirePassword(ctx context.Context, password string) error {
	tag, err := v.passwordTagRepository.Get(ctx)
	switch {
	case errors.Is(err, store.ErrPasswordTagNotFound):
		return ErrPasswordNotSet
	case err != nil:
		return fmt.Errorf("verify password: %w", err)
	}

	if !v.tagMatches(tag, password) {
		return ErrInvalidPassword
	}

	return nil
}

func (v *vaultService) SetPrivateKey(ctx context.Context, material []byte, name, password string) (models.Account, error) {
	if err := v.requirePassword(ctx, password); err != nil {
		return models.Account{}, err
	}

	seed, err := seedFromMaterial(material)
	if err != nil {
		return models.Account{}, err
	}

	return v.storeSeed(ctx, seed, name, password)
}

// seedFromMaterial extracts the 32-byte ed25519 seed from imported key
// material. A 64-byte input is the legacy seed ‖ public-key layout and is
// cross-checked against the key actually derived from the seed.
func seedFromMaterial(material []byte) ([]byte, error) {
	switch len(material) {
	case ed25519SeedLength:
		return material, nil
	case legacyPrivateKeyLength:
		seed := material[:ed25519SeedLength]
		derived := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
		if !bytes.Equal(derived, material[ed25519SeedLength:]) {
			return nil, fmt.Errorf("%w: public key does not match seed", ErrInvalidKeyMaterial)
		}
		return seed, nil
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want %d or %d", ErrInvalidKeyMaterial, len(material), ed25519SeedLength, legacyPrivateKeyLength)
	}
}

// storeSeed seals seed under password and upserts the key record and the
// matching account record. Existing records keep their id and creation
// time; only the envelope is rewritten.
func (v *vaultService) storeSeed(ctx context.Context, seed []byte, name, password string) (models.Account, error) {
	publicKey := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	publicKeyHex := hex.EncodeToString(publicKey)

	address, err := types.EncodeAddress(publicKey)
	if err != nil {
		return models.Account{}, fmt.Errorf("encode address: %w", err)
	}

	envelope, err := v.keychain.Encrypt(seed, password)
	if err != nil {
		return models.Account{}, fmt.Errorf("seal private key: %w", err)
	}

	tag, err := v.passwordTagRepository.Get(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("load password tag: %w", err)
	}

	now := v.now()
	record := models.PrivateKeyRecord{
		ID:                  v.uuidGenerator.Generate(),
		PublicKey:           publicKeyHex,
		EncryptedPrivateKey: envelope,
		PasswordTagID:       tag.ID,
		Version:             models.PrivateKeyRecordVersionCurrent,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing, err := v.privateKeyRepository.GetByPublicKey(ctx, publicKeyHex); err == nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	if _, err := v.privateKeyRepository.Save(ctx, record); err != nil {
		return models.Account{}, fmt.Errorf("save key record: %w", err)
	}

	account := models.Account{
		Address:   address,
		PublicKey: publicKeyHex,
		Name:      name,
		CreatedAt: now,
	}
	if existing, err := v.accountRepository.GetByAddress(ctx, address); err == nil {
		account.CreatedAt = existing.CreatedAt
		if name == "" {
			account.Name = existing.Name
		}
	}
	if _, err := v.accountRepository.Save(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("save account: %w", err)
	}

	v.logger.Debug().Str("address", address).Msg("private key stored")

	return account, nil
}

func (v *vaultService) GetDecryptedPrivateKey(ctx context.Context, publicKey, password string) ([]byte, error) {
	if err := v.requirePassword(ctx, password); err != nil {
		return nil, err
	}

	record, err := v.privateKeyRepository.GetByPublicKey(ctx, publicKey)
	if err != nil {
		return nil, fmt.Errorf("load key record: %w", err)
	}

	payload, err := v.keychain.Decrypt(record.EncryptedPrivateKey, password)
	if err != nil {
		return nil, fmt.Errorf("open key record: %w", err)
	}

	// Legacy records carry seed ‖ public key; slice down to the seed on
	// read without rewriting the stored format.
	if record.Version == models.PrivateKeyRecordVersionLegacy && len(payload) == legacyPrivateKeyLength {
		payload = payload[:ed25519SeedLength]
	}

	return payload, nil
}

func (v *vaultService) HasPrivateKey(ctx context.Context, publicKey string) (bool, error) {
	_, err := v.privateKeyRepository.GetByPublicKey(ctx, publicKey)
	switch {
	case errors.Is(err, store.ErrPrivateKeyNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("has private key: %w", err)
	}

	return true, nil
}

func (v *vaultService) GenerateAccount(ctx context.Context, name, password string) (models.Account, error) {
	if err := v.requirePassword(ctx, password); err != nil {
		return models.Account{}, err
	}

	generated := algocrypto.GenerateAccount()

	return v.storeSeed(ctx, generated.PrivateKey.Seed(), name, password)
}

func (v *vaultService) ImportAccountFromMnemonic(ctx context.Context, mnemonicPhrase, name, password string) (models.Account, error) {
	if err := v.requirePassword(ctx, password); err != nil {
		return models.Account{}, err
	}

	privateKey, err := mnemonic.ToPrivateKey(mnemonicPhrase)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	return v.storeSeed(ctx, privateKey.Seed(), name, password)
}

func (v *vaultService) ExportMnemonic(ctx context.Context, address, password string) (string, error) {
	account, err := v.accountRepository.GetByAddress(ctx, address)
	if err != nil {
		return "", fmt.Errorf("load account: %w", err)
	}

	seed, err := v.GetDecryptedPrivateKey(ctx, account.PublicKey, password)
	if err != nil {
		return "", err
	}

	phrase, err := mnemonic.FromPrivateKey(ed25519.NewKeyFromSeed(seed))
	if err != nil {
		return "", fmt.Errorf("derive mnemonic: %w", err)
	}

	return phrase, nil
}

func (v *vaultService) AddWatchAccount(ctx context.Context, address, name string) (models.Account, error) {
	decoded, err := types.DecodeAddress(address)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	account := models.Account{
		Address:   decoded.String(),
		PublicKey: hex.EncodeToString(decoded[:]),
		Name:      name,
		CreatedAt: v.now(),
	}
	if existing, err := v.accountRepository.GetByAddress(ctx, account.Address); err == nil {
		account.CreatedAt = existing.CreatedAt
	}

	saved, err := v.accountRepository.Save(ctx, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("save account: %w", err)
	}

	return saved, nil
}

func (v *vaultService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.accountRepository.GetAll(ctx)
}

func (v *vaultService) RemoveAccount(ctx context.Context, address string) error {
	account, err := v.accountRepository.GetByAddress(ctx, address)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("load account: %w", err)
	}

	if err := v.privateKeyRepository.RemoveByPublicKey(ctx, account.PublicKey); err != nil &&
		!errors.Is(err, store.ErrPrivateKeyNotFound) {
		return fmt.Errorf("remove key record: %w", err)
	}

	return v.accountRepository.RemoveByAddress(ctx, address)
}
