// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/models"
)

// accountRepository is the KV-backed implementation of [AccountRepository].
type accountRepository struct {
	kv     KVStore
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided KV store.
func NewAccountRepository(kv KVStore, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		kv:     kv,
		logger: logger,
	}
}

// GetByAddress implements [AccountRepository].
func (r *accountRepository) GetByAddress(ctx context.Context, address string) (models.Account, error) {
	return getRecord[models.Account](ctx, r.kv, accountKey(address), ErrAccountNotFound)
}

// GetAll implements [AccountRepository]. Results are ordered by creation
// time, oldest first, matching the order accounts are shown in.
func (r *accountRepository) GetAll(ctx context.Context) ([]models.Account, error) {
	accounts, err := listRecords[models.Account](ctx, r.kv, accountKeyPrefix)
	if err != nil {
		return nil, err
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].CreatedAt < accounts[j].CreatedAt })
	return accounts, nil
}

// Save implements [AccountRepository].
func (r *accountRepository) Save(ctx context.Context, account models.Account) (models.Account, error) {
	if err := putRecord(ctx, r.kv, accountKey(account.Address), account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// RemoveByAddress implements [AccountRepository].
func (r *accountRepository) RemoveByAddress(ctx context.Context, address string) error {
	return r.kv.Remove(ctx, accountKey(address))
}
