// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/config"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
	"github.com/ava-labs/utxoledger/utils/formatting"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

func parseKeyConfig(t *testing.T, args ...string) (keyConfig, error) {
	fs := config.BuildFlagSet("test")
	addFlags(fs)
	v, err := config.BuildViper(fs, args)
	require.NoError(t, err)
	return getKeyConfig(v)
}

func TestDescribe(t *testing.T) {
	require := require.New(t)

	privKeys := secp256k1.TestKeys(2)
	encoded := make([]string, len(privKeys))
	for i, key := range privKeys {
		var err error
		encoded[i], err = formatting.EncodeCB58(key.PublicKey().Bytes())
		require.NoError(err)
	}

	keyCfg, err := parseKeyConfig(t,
		"--public-keys="+encoded[0],
		"--public-keys="+encoded[1],
		"--threshold=1",
		"--algorithm="+hashing.SHA3256,
	)
	require.NoError(err)

	r, err := describe(keyCfg)
	require.NoError(err)

	composite, ok := r.Key.(*keys.CompositeKey)
	require.True(ok)
	require.Equal(uint32(1), composite.Threshold)
	require.Len(r.Leaves, 2)
	for _, leaf := range r.Leaves {
		require.Contains(encoded, leaf.CB58)
		expected, err := hashing.Compute(hashing.SHA3256, leaf.Key.Bytes())
		require.NoError(err)
		require.Equal(expected, leaf.KeyID)
	}
	require.Contains(r.String(), r.Leaves[0].CB58)
}

func TestDescribeSingleGeneratedKey(t *testing.T) {
	require := require.New(t)

	keyCfg, err := parseKeyConfig(t, "--generate=1")
	require.NoError(err)

	r, err := describe(keyCfg)
	require.NoError(err)

	_, ok := r.Key.(*secp256k1.PublicKey)
	require.True(ok)
	require.Len(r.Leaves, 1)
}

func TestGetKeyConfigInvalid(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "no keys",
			expectedErr: errNoKeys,
		},
		{
			name:        "unknown algorithm",
			args:        []string{"--generate=1", "--algorithm=MD5"},
			expectedErr: errUnknownAlgorithm,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseKeyConfig(t, test.args...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
