// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-algo-wallet/internal/logger"
)

func testAddresses(t *testing.T) (types.Address, types.Address) {
	t.Helper()

	var a, b types.Address
	a[0] = 1
	b[0] = 2
	return a, b
}

func TestTxnGroupService_ComputeGroupID_OrderSensitive(t *testing.T) {
	groups := NewTxnGroupService(logger.Nop())
	sender, receiver := testAddresses(t)

	txn1 := makePayment(sender, receiver, 1000)
	txn2 := makePayment(receiver, sender, 2000)

	forward, err := groups.ComputeGroupID([]types.Transaction{txn1, txn2})
	require.NoError(t, err)
	reversed, err := groups.ComputeGroupID([]types.Transaction{txn2, txn1})
	require.NoError(t, err)

	assert.NotEqual(t, forward, reversed, "group id must depend on transaction order")
}

func TestTxnGroupService_ComputeGroupID_IgnoresDeclaredGroup(t *testing.T) {
	groups := NewTxnGroupService(logger.Nop())
	sender, receiver := testAddresses(t)

	txn1 := makePayment(sender, receiver, 1000)
	txn2 := makePayment(receiver, sender, 2000)

	groupID, err := groups.ComputeGroupID([]types.Transaction{txn1, txn2})
	require.NoError(t, err)

	// Recomputing over transactions that already carry the id must yield
	// the same id, and must not touch the inputs.
	txn1.Group = groupID
	txn2.Group = groupID
	again, err := groups.ComputeGroupID([]types.Transaction{txn1, txn2})
	require.NoError(t, err)
	assert.Equal(t, groupID, again)
	assert.Equal(t, groupID, txn1.Group, "input transactions must not be modified")
}

func TestTxnGroupService_VerifyTransactionGroups(t *testing.T) {
	groups := NewTxnGroupService(logger.Nop())
	sender, receiver := testAddresses(t)

	t.Run("empty batch is valid", func(t *testing.T) {
		assert.NoError(t, groups.VerifyTransactionGroups(nil))
	})

	t.Run("ungrouped transactions are valid", func(t *testing.T) {
		txns := []types.Transaction{
			makePayment(sender, receiver, 1000),
			makePayment(receiver, sender, 2000),
		}
		assert.NoError(t, groups.VerifyTransactionGroups(txns))
	})

	t.Run("intact group is valid", func(t *testing.T) {
		txns := []types.Transaction{
			makePayment(sender, receiver, 1000),
			makePayment(receiver, sender, 2000),
		}
		groupID, err := groups.ComputeGroupID(txns)
		require.NoError(t, err)
		txns[0].Group = groupID
		txns[1].Group = groupID

		assert.NoError(t, groups.VerifyTransactionGroups(txns))
	})

	t.Run("tampered member invalidates the group", func(t *testing.T) {
		txns := []types.Transaction{
			makePayment(sender, receiver, 1000),
			makePayment(receiver, sender, 2000),
		}
		groupID, err := groups.ComputeGroupID(txns)
		require.NoError(t, err)
		txns[0].Group = groupID
		txns[1].Group = groupID

		txns[1].Amount = 9_000_000

		err = groups.VerifyTransactionGroups(txns)
		var mismatch *GroupIDMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.NotEmpty(t, mismatch.ComputedGroupID)
	})

	t.Run("group member injected among ungrouped transactions", func(t *testing.T) {
		grouped := []types.Transaction{
			makePayment(sender, receiver, 1000),
			makePayment(receiver, sender, 2000),
		}
		groupID, err := groups.ComputeGroupID(grouped)
		require.NoError(t, err)
		grouped[0].Group = groupID
		grouped[1].Group = groupID

		// Only one member of the group arrives, next to an ungrouped
		// transaction: the declared id can no longer be reproduced.
		batch := []types.Transaction{
			grouped[0],
			makePayment(sender, receiver, 3000),
		}

		err = groups.VerifyTransactionGroups(batch)
		var mismatch *GroupIDMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestTxnGroupService_DecodeUnsignedTransaction(t *testing.T) {
	groups := NewTxnGroupService(logger.Nop())
	sender, receiver := testAddresses(t)
	txn := makePayment(sender, receiver, 1000)

	t.Run("plain msgpack", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(msgpack.Encode(txn))

		decoded, err := groups.DecodeUnsignedTransaction(encoded)
		require.NoError(t, err)
		assert.Equal(t, txn, decoded)
	})

	t.Run("TX-prefixed msgpack", func(t *testing.T) {
		raw := append([]byte("TX"), msgpack.Encode(txn)...)
		encoded := base64.StdEncoding.EncodeToString(raw)

		decoded, err := groups.DecodeUnsignedTransaction(encoded)
		require.NoError(t, err)
		assert.Equal(t, txn, decoded)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := groups.DecodeUnsignedTransaction("%%%not base64%%%")
		assert.Error(t, err)
	})
}
