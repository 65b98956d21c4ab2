// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"bytes"

	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
	"github.com/ava-labs/utxoledger/utils/set"
)

var (
	_ PublicKey = (*secp256k1.PublicKey)(nil)
	_ PublicKey = (*CompositeKey)(nil)
)

// PublicKey is either a single key or a composite threshold key.
type PublicKey interface {
	// Bytes returns a canonical encoding of the key. Two keys are equal iff
	// their encodings are equal.
	Bytes() []byte
	String() string
}

// Equal returns true if [a] and [b] encode the same key.
func Equal(a, b PublicKey) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Fingerprint returns a comparable identity for [key] usable as a map key.
func Fingerprint(key PublicKey) string {
	if key == nil {
		return ""
	}
	return string(key.Bytes())
}

// Leaves returns the simple keys of [key] in deterministic depth first order
// without duplicates. A simple key is its own only leaf.
func Leaves(key PublicKey) []PublicKey {
	composite, ok := key.(*CompositeKey)
	if !ok {
		return []PublicKey{key}
	}

	var (
		leaves []PublicKey
		seen   = set.Set[string]{}
	)
	composite.visitLeaves(func(leaf PublicKey) {
		fp := Fingerprint(leaf)
		if seen.Contains(fp) {
			return
		}
		seen.Add(fp)
		leaves = append(leaves, leaf)
	})
	return leaves
}

// IsFulfilledBy returns true if the signers satisfy [key]. A simple key is
// fulfilled when it is one of the signers. A composite key is fulfilled when
// its threshold is reached.
func IsFulfilledBy(key PublicKey, signers []PublicKey) bool {
	return isFulfilledBy(key, fingerprints(signers))
}

func isFulfilledBy(key PublicKey, signers set.Set[string]) bool {
	if composite, ok := key.(*CompositeKey); ok {
		return composite.isFulfilledBy(signers)
	}
	return signers.Contains(Fingerprint(key))
}

func fingerprints(keys []PublicKey) set.Set[string] {
	s := set.NewSet[string](len(keys))
	for _, key := range keys {
		s.Add(Fingerprint(key))
	}
	return s
}
