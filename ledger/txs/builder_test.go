// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

var errUnknownRef = errors.New("unknown ref")

type mapResolver map[StateRef]TransactionState

func (r mapResolver) ResolveStateRefs(refs []StateRef) ([]StateAndRef, error) {
	resolved := make([]StateAndRef, 0, len(refs))
	for _, ref := range refs {
		state, ok := r[ref]
		if !ok {
			return nil, errUnknownRef
		}
		resolved = append(resolved, StateAndRef{State: state, Ref: ref})
	}
	return resolved, nil
}

func testNotary() Party {
	return Party{
		Name: "O=Notary, L=London, C=GB",
		Key:  secp256k1.TestKeys(1)[0].PublicKey(),
	}
}

func TestBuilderEncumbranceGroups(t *testing.T) {
	require := require.New(t)

	b := NewBuilder().
		AddOutputState("Cash", "plain").
		AddEncumberedOutputStates("escrow", "Cash", "a", "b").
		AddEncumberedOutputStates("lonely", "Cash", "c").
		AddEncumberedOutputStates("escrow", "Cash", "d")

	require.Equal([]EncumbranceGroup{
		{Size: 3, Tag: "escrow"},
		{Size: 1, Tag: "lonely"},
	}, b.EncumbranceGroups())
	require.Equal([]ContractState{"plain", "a", "b", "c", "d"}, b.OutputContractStates())
}

func TestBuilderNullableFields(t *testing.T) {
	require := require.New(t)

	b := NewBuilder()
	require.Nil(b.Notary())
	require.Nil(b.TimeWindow())

	now := time.Unix(1_700_000_000, 0)
	_, err := b.SetTimeWindowBetween(now, now)
	require.ErrorIs(err, errInvalidTimeWindow)
	require.Nil(b.TimeWindow())

	b.SetNotary(testNotary()).SetTimeWindowUntil(now)
	require.NotNil(b.Notary())
	require.True(b.Notary().Equal(testNotary()))
	require.Equal(now, b.TimeWindow().Until)
}

func TestBuilderToLedgerTransaction(t *testing.T) {
	require := require.New(t)

	notary := testNotary()
	signer := secp256k1.TestKeys(2)[1].PublicKey()
	inputRef := StateRef{TransactionID: ids.ID{1}, Index: 0}
	referenceRef := StateRef{TransactionID: ids.ID{2}, Index: 3}
	resolver := mapResolver{
		inputRef: {
			ContractState: "input",
			ContractType:  "Cash",
			Notary:        notary,
		},
		referenceRef: {
			ContractState: "reference",
			ContractType:  "Oracle",
			Notary:        notary,
		},
	}

	until := time.Unix(1_700_000_000, 0)
	b := NewBuilder().
		SetNotary(notary).
		SetTimeWindowUntil(until).
		AddSignatories(signer).
		AddCommand(Command{Value: "Move", Signers: []keys.PublicKey{signer}}).
		AddInputStates(inputRef).
		AddReferenceStates(referenceRef).
		AddOutputState("Cash", "plain").
		AddEncumberedOutputStates("escrow", "Escrow", "a", "b")

	txID := ids.ID{9}
	metadata := NewMetadata(hashing.NewSecureHash(hashing.SHA256, []byte{1, 2, 3}))
	tx, err := b.ToLedgerTransaction(txID, metadata, resolver)
	require.NoError(err)

	require.Equal(txID, tx.ID())
	require.True(tx.Notary().Equal(notary))
	require.Equal(until, tx.TimeWindow().Until)
	require.Equal(metadata, tx.Metadata())
	require.Equal([]StateRef{inputRef}, tx.InputStateRefs())
	require.Equal([]StateRef{referenceRef}, tx.ReferenceStateRefs())
	require.Len(tx.Signatories(), 1)
	require.Len(tx.Commands(), 1)

	outputs := tx.Outputs()
	require.Len(outputs, 3)
	for i, output := range outputs {
		require.Equal(StateRef{TransactionID: txID, Index: uint32(i)}, output.Ref)
		require.True(output.State.Notary.Equal(notary))
	}
	require.Nil(outputs[0].State.EncumbranceGroup)
	require.Equal(&EncumbranceGroup{Size: 2, Tag: "escrow"}, outputs[1].State.EncumbranceGroup)
	require.Equal(&EncumbranceGroup{Size: 2, Tag: "escrow"}, outputs[2].State.EncumbranceGroup)
	require.Equal("Escrow", outputs[2].State.ContractType)
}

func TestBuilderToLedgerTransactionErrors(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	missing := StateRef{TransactionID: ids.ID{7}}

	tests := []struct {
		name        string
		builder     *Builder
		resolver    StateResolver
		expectedErr error
	}{
		{
			name:        "no notary",
			builder:     NewBuilder().SetTimeWindowUntil(now),
			resolver:    mapResolver{},
			expectedErr: ErrNilNotary,
		},
		{
			name:        "no time window",
			builder:     NewBuilder().SetNotary(testNotary()),
			resolver:    mapResolver{},
			expectedErr: ErrNilTimeWindow,
		},
		{
			name:        "no resolver",
			builder:     NewBuilder().SetNotary(testNotary()).SetTimeWindowUntil(now),
			expectedErr: errNilResolver,
		},
		{
			name:        "unresolved input",
			builder:     NewBuilder().SetNotary(testNotary()).SetTimeWindowUntil(now).AddInputStates(missing),
			resolver:    mapResolver{},
			expectedErr: errUnknownRef,
		},
		{
			name:        "unresolved reference",
			builder:     NewBuilder().SetNotary(testNotary()).SetTimeWindowUntil(now).AddReferenceStates(missing),
			resolver:    mapResolver{},
			expectedErr: errUnresolvedRefs,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.builder.ToLedgerTransaction(ids.ID{1}, Metadata{}, test.resolver)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
