// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"fmt"
	"strings"

	"github.com/ava-labs/utxoledger/ledger/txs"
)

// VerifyBuilder checks that [b] can be signed. The notary, the time window and
// the encumbrance groups are checked before the structural invariants.
func VerifyBuilder(b *txs.Builder) error {
	if b.Notary() == nil {
		return fmt.Errorf("%w: the notary of the current %s must not be nil", ErrNilNotary, SubjectBuilder)
	}
	if b.TimeWindow() == nil {
		return fmt.Errorf("%w: the time window of the current %s must not be nil", ErrNilTimeWindow, SubjectBuilder)
	}
	if err := verifyEncumbranceGroups(b.EncumbranceGroups()); err != nil {
		return err
	}
	return NewStructuralVerifier(SubjectBuilder).Verify(b)
}

func verifyEncumbranceGroups(groups []txs.EncumbranceGroup) error {
	var tooSmall []string
	for _, group := range groups {
		if group.Size <= 1 {
			tooSmall = append(tooSmall, group.Tag)
		}
	}
	if len(tooSmall) == 0 {
		return nil
	}
	return fmt.Errorf(
		"%w: every encumbrance group of the current %s needs to have at least two states, the following tags are used for less than two states: %s",
		ErrEncumbranceGroupTooSmall,
		SubjectBuilder,
		strings.Join(tooSmall, ", "),
	)
}
