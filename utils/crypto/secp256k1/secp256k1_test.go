// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)

	msg := []byte("transaction id")
	sig, err := key.Sign(msg)
	require.NoError(err)
	require.Len(sig, SignatureLen)

	pub := key.PublicKey()
	require.True(pub.Verify(msg, sig))
	require.False(pub.Verify([]byte("another transaction"), sig))

	other := TestKeys(1)[0]
	require.False(other.PublicKey().Verify(msg, sig))

	recovered, err := RecoverPublicKey(msg, sig)
	require.NoError(err)
	require.Equal(pub.Bytes(), recovered.Bytes())
}

func TestKeyEncodingRoundTrip(t *testing.T) {
	require := require.New(t)

	key := TestKeys(1)[0]

	parsedPriv, err := ToPrivateKey(key.Bytes())
	require.NoError(err)
	require.Equal(key.PublicKey().Bytes(), parsedPriv.PublicKey().Bytes())

	parsedPub, err := ToPublicKey(key.PublicKey().Bytes())
	require.NoError(err)
	require.Equal(key.PublicKey().Bytes(), parsedPub.Bytes())
	require.Len(parsedPub.Bytes(), PublicKeyLen)
}

func TestTestKeysDeterministic(t *testing.T) {
	require := require.New(t)

	first := TestKeys(3)
	second := TestKeys(3)
	for i := range first {
		require.Equal(first[i].Bytes(), second[i].Bytes())
	}
	require.NotEqual(first[0].Bytes(), first[1].Bytes())
}

func TestInvalidInputs(t *testing.T) {
	require := require.New(t)

	_, err := ToPrivateKey(make([]byte, PrivateKeyLen-1))
	require.ErrorIs(err, errInvalidPrivateKeyLen)

	_, err = ToPublicKey(make([]byte, PublicKeyLen+1))
	require.ErrorIs(err, errInvalidPublicKeyLen)

	_, err = RecoverPublicKey([]byte("msg"), make([]byte, SignatureLen-1))
	require.ErrorIs(err, errInvalidSigLen)

	key := TestKeys(1)[0]
	require.False(key.PublicKey().Verify([]byte("msg"), []byte{1, 2, 3}))
}
