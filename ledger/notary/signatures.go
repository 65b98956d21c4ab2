// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"fmt"

	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/hashing"
	"github.com/ava-labs/utxoledger/utils/set"
)

// VerifyNotarySignatures checks every signature of [tx] made by a leaf of
// [notaryKey] and then checks that the verified keys fulfil [notaryKey].
// Signatures by unknown keys are ignored. The first invalid signature aborts
// verification. A nil [cache] disables caching.
func VerifyNotarySignatures(
	tx txs.NotarizedTransaction,
	notaryKey keys.PublicKey,
	signatures []DigitalSignatureAndMetadata,
	cache KeyIDCache,
	service SignatureService,
) error {
	if cache == nil {
		cache = NewKeyIDCache()
	}

	var (
		verified []keys.PublicKey
		seen     = set.Set[string]{}
	)
	for _, sig := range signatures {
		key, err := ResolveKey(sig.By, notaryKey, cache, service)
		if err != nil {
			return &SignatureError{
				TransactionID: tx.ID(),
				Message:       fmt.Sprintf("failed to resolve the key with ID %s", sig.By),
				Cause:         err,
			}
		}
		if key == nil {
			continue
		}

		if err := service.VerifySignature(tx, sig, key); err != nil {
			return &SignatureError{
				TransactionID: tx.ID(),
				Message:       fmt.Sprintf("failed to verify signature from %s", key),
				Cause:         err,
			}
		}

		fp := keys.Fingerprint(key)
		if seen.Contains(fp) {
			continue
		}
		seen.Add(fp)
		verified = append(verified, key)
	}

	if !keys.IsFulfilledBy(notaryKey, verified) {
		return &SignatureError{
			TransactionID: tx.ID(),
			Message: fmt.Sprintf(
				"notary signing keys %v did not fulfil the requirements of the notary key %s",
				verified,
				notaryKey,
			),
		}
	}
	return nil
}

// ResolveKey returns the leaf of [notaryKey] whose ID is [keyID], or nil if
// there is none. The IDs of all leaves are computed with the algorithm of
// [keyID] on the first lookup and cached.
func ResolveKey(
	keyID hashing.SecureHash,
	notaryKey keys.PublicKey,
	cache KeyIDCache,
	service SignatureService,
) (keys.PublicKey, error) {
	algorithm := keyID.Algorithm()
	keyIDs, ok := cache.Get(notaryKey, algorithm)
	if !ok {
		leaves := keys.Leaves(notaryKey)
		keyIDs = make(KeyIDs, len(leaves))
		for _, leaf := range leaves {
			id, err := service.GetIDOfPublicKey(leaf, algorithm)
			if err != nil {
				return nil, err
			}
			keyIDs[id] = leaf
		}
		cache.Put(notaryKey, algorithm, keyIDs)
	}
	return keyIDs[keyID], nil
}
