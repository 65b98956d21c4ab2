// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/ids"
)

func TestStateRefString(t *testing.T) {
	require := require.New(t)

	ref := StateRef{
		TransactionID: ids.ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
		Index:         7,
	}
	require.Equal("jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7:7", ref.String())

	parsed, err := StateRefFromString(ref.String())
	require.NoError(err)
	require.Equal(ref, parsed)
}

func TestStateRefFromStringErrors(t *testing.T) {
	tests := []string{
		"",
		"no separator",
		"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7:",
		"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7:-1",
		"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7:4294967296",
		"notanid:1",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			_, err := StateRefFromString(test)
			require.ErrorIs(t, err, errMalformedStateRef)
		})
	}
}

func TestStateRefCompare(t *testing.T) {
	require := require.New(t)

	low := StateRef{TransactionID: ids.ID{1}, Index: 5}
	high := StateRef{TransactionID: ids.ID{2}, Index: 0}
	require.Equal(-1, low.Compare(high))
	require.Equal(1, high.Compare(low))
	require.Zero(low.Compare(low))

	next := StateRef{TransactionID: ids.ID{1}, Index: 6}
	require.Equal(-1, low.Compare(next))
}
