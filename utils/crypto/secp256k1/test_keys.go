// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import "github.com/ava-labs/utxoledger/utils/hashing"

// TestKeys returns [n] deterministic keys. They must only be used in tests.
func TestKeys(n int) []*PrivateKey {
	keys := make([]*PrivateKey, n)
	for i := range keys {
		seed := hashing.ComputeHash256([]byte{'t', 'e', 's', 't', byte(i)})
		key, err := ToPrivateKey(seed)
		if err != nil {
			panic(err)
		}
		keys[i] = key
	}
	return keys
}
