// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
)

type testCashState struct {
	Amount uint64
}

func TestLedgerTransactionIsImmutable(t *testing.T) {
	require := require.New(t)

	notary := testNotary()
	inputs := []StateAndRef{
		{
			State: TransactionState{ContractState: "in", ContractType: "Cash", Notary: notary},
			Ref:   StateRef{TransactionID: ids.ID{1}},
		},
	}
	signatories := []keys.PublicKey{secp256k1.TestKeys(1)[0].PublicKey()}
	tx := NewLedgerTransaction(LedgerTransactionParams{
		ID:          ids.ID{2},
		Notary:      notary,
		Signatories: signatories,
		Inputs:      inputs,
	})

	inputs[0].Ref.Index = 5
	signatories[0] = nil
	require.Zero(tx.Inputs()[0].Ref.Index)
	require.NotNil(tx.Signatories()[0])

	returned := tx.Inputs()
	returned[0].State.ContractType = "Other"
	require.Equal("Cash", tx.InputTransactionStates()[0].ContractType)
}

func TestFilter(t *testing.T) {
	require := require.New(t)

	notary := testNotary()
	tx := NewLedgerTransaction(LedgerTransactionParams{
		ID:     ids.ID{3},
		Notary: notary,
		Outputs: []StateAndRef{
			{Ref: StateRef{TransactionID: ids.ID{3}, Index: 0}},
			{Ref: StateRef{TransactionID: ids.ID{3}, Index: 1}},
		},
	})

	filtered := Filter(tx)
	require.Equal(tx.ID(), filtered.ID())
	require.True(filtered.Notary().Equal(notary))
	require.Equal(tx.Metadata(), filtered.Metadata())
	require.Equal([]StateRef{
		{TransactionID: ids.ID{3}, Index: 0},
		{TransactionID: ids.ID{3}, Index: 1},
	}, filtered.OutputStateRefs())
}

func TestDistinctParties(t *testing.T) {
	require := require.New(t)

	privKeys := secp256k1.TestKeys(2)
	a := Party{Name: "A", Key: privKeys[0].PublicKey()}
	aAgain := Party{Name: "A", Key: privKeys[0].PublicKey()}
	renamed := Party{Name: "B", Key: privKeys[0].PublicKey()}
	rekeyed := Party{Name: "A", Key: privKeys[1].PublicKey()}

	distinct := DistinctParties([]Party{a, aAgain, renamed, a, rekeyed})
	require.Len(distinct, 3)
	require.True(distinct[0].Equal(a))
	require.True(distinct[1].Equal(renamed))
	require.True(distinct[2].Equal(rekeyed))
}

func TestTimeWindowContains(t *testing.T) {
	require := require.New(t)

	from := time.Unix(100, 0)
	until := time.Unix(200, 0)

	bounded, err := NewTimeWindowBetween(from, until)
	require.NoError(err)
	require.False(bounded.Contains(time.Unix(99, 0)))
	require.True(bounded.Contains(from))
	require.True(bounded.Contains(time.Unix(199, 0)))
	require.False(bounded.Contains(until))

	open := NewTimeWindowUntil(until)
	require.True(open.Contains(time.Unix(0, 0)))
	require.False(open.Contains(until))
}

func TestClassName(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{
			value:    testCashState{},
			expected: "github.com/ava-labs/utxoledger/ledger/txs.testCashState",
		},
		{
			value:    &testCashState{},
			expected: "github.com/ava-labs/utxoledger/ledger/txs.testCashState",
		},
		{
			value:    "string state",
			expected: "string",
		},
		{
			value:    []byte{1},
			expected: "[]uint8",
		},
		{
			value:    nil,
			expected: "<nil>",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, ClassName(test.value))
		})
	}
}
