// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/base64"
	"fmt"

	algocrypto "github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

// transactionPrefix is the domain-separation prefix some encoders prepend
// to unsigned transaction msgpack.
var transactionPrefix = []byte("TX")

type txnGroupService struct {
	logger *logger.Logger
}

// NewTxnGroupService returns a [TxnGroupService].
func NewTxnGroupService(logger *logger.Logger) TxnGroupService {
	return &txnGroupService{logger: logger}
}

func (t *txnGroupService) ComputeGroupID(txns []types.Transaction) (types.Digest, error) {
	// Group ids are assigned over transactions whose Group field is still
	// zero, so recomputation must clear it. Work on copies: callers keep
	// the declared ids for comparison.
	cleared := make([]types.Transaction, len(txns))
	copy(cleared, txns)
	for i := range cleared {
		cleared[i].Group = types.Digest{}
	}

	groupID, err := algocrypto.ComputeGroupID(cleared)
	if err != nil {
		return types.Digest{}, fmt.Errorf("compute group id: %w", err)
	}

	return groupID, nil
}

func (t *txnGroupService) VerifyTransactionGroups(txns []types.Transaction) error {
	var zeroDigest types.Digest

	// Partition by declared group id, preserving batch order inside each
	// subgroup. Transactions declaring no group need no verification.
	subgroups := make(map[types.Digest][]types.Transaction)
	order := make([]types.Digest, 0)
	for _, txn := range txns {
		if txn.Group == zeroDigest {
			continue
		}
		if _, ok := subgroups[txn.Group]; !ok {
			order = append(order, txn.Group)
		}
		subgroups[txn.Group] = append(subgroups[txn.Group], txn)
	}

	for _, declared := range order {
		computed, err := t.ComputeGroupID(subgroups[declared])
		if err != nil {
			return err
		}
		if computed != declared {
			return &GroupIDMismatchError{
				ComputedGroupID: base64.StdEncoding.EncodeToString(computed[:]),
			}
		}
	}

	return nil
}

func (t *txnGroupService) DecodeUnsignedTransaction(encoded string) (types.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("decode transaction base64: %w", err)
	}

	raw = bytes.TrimPrefix(raw, transactionPrefix)

	var txn types.Transaction
	if err := msgpack.Decode(raw, &txn); err != nil {
		return types.Transaction{}, fmt.Errorf("decode transaction msgpack: %w", err)
	}

	return txn, nil
}
