// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"fmt"

	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

// VerifyNotaryAllowed checks that [tx] was built against [params] and that the
// notary of [tx] is listed in them, by key or else by name.
func VerifyNotaryAllowed(tx txs.NotarizedTransaction, params *SignedGroupParameters) error {
	if params == nil {
		return fmt.Errorf("%w: no group parameters available for transaction %s", ErrGroupParametersMismatch, tx.ID())
	}

	txHash := tx.Metadata().GroupParametersHash
	if txHash != params.Hash {
		return fmt.Errorf(
			"%w: membership group parameters %s is not the one associated to the transaction %s (%s)",
			ErrGroupParametersMismatch,
			params.Hash,
			tx.ID(),
			txHash,
		)
	}

	notary := tx.Notary()
	for _, info := range params.Notaries {
		if keys.Equal(info.PublicKey, notary.Key) {
			return nil
		}
	}
	for _, info := range params.Notaries {
		if info.Name == notary.Name {
			return nil
		}
	}
	return fmt.Errorf(
		"%w: notary %s of the transaction %s is not listed in the available notaries",
		ErrNotaryNotAllowed,
		notary.Name,
		tx.ID(),
	)
}

// VerifyNotaryAllowedWithLookup checks [tx] against the group parameters
// currently in effect.
func VerifyNotaryAllowedWithLookup(tx txs.NotarizedTransaction, lookup GroupParametersLookup) error {
	params, err := lookup.CurrentGroupParameters()
	if err != nil {
		return fmt.Errorf("failed to look up the current group parameters: %w", err)
	}
	return VerifyNotaryAllowed(tx, params)
}
