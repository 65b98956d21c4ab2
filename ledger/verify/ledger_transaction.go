// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"fmt"

	"github.com/ava-labs/utxoledger/ledger/txs"
)

// LedgerTransactionVerifier runs the platform checks of a finalized
// transaction. Contract verification is done separately.
type LedgerTransactionVerifier struct {
	tx         *txs.LedgerTransaction
	structural StructuralVerifier
}

func NewLedgerTransactionVerifier(tx *txs.LedgerTransaction) *LedgerTransactionVerifier {
	return &LedgerTransactionVerifier{
		tx:         tx,
		structural: NewStructuralVerifier(SubjectTransaction),
	}
}

// VerifyPlatformChecks returns the first violated structural invariant of the
// transaction, including the consistency of its dependencies' notaries with
// [expectedNotary].
func (v *LedgerTransactionVerifier) VerifyPlatformChecks(expectedNotary txs.Party) error {
	if err := v.structural.Verify(v.tx); err != nil {
		return err
	}
	if err := v.VerifyInputNotaries(expectedNotary); err != nil {
		return err
	}
	return v.VerifyInputsAreOlderThanOutputs()
}

// VerifyInputNotaries checks that all input and reference states share one
// notary and that it is [expectedNotary]. A transaction without dependencies
// passes.
func (v *LedgerTransactionVerifier) VerifyInputNotaries(expectedNotary txs.Party) error {
	dependencies := append(v.tx.InputTransactionStates(), v.tx.ReferenceTransactionStates()...)
	if len(dependencies) == 0 {
		return nil
	}

	notaries := make([]txs.Party, len(dependencies))
	for i, state := range dependencies {
		notaries[i] = state.Notary
	}
	distinct := txs.DistinctParties(notaries)
	if len(distinct) != 1 {
		return fmt.Errorf(
			"%w: input and reference states of %s %s have %d distinct notaries %v, expected 1",
			ErrInconsistentInputNotaries,
			SubjectTransaction,
			v.tx.ID(),
			len(distinct),
			distinct,
		)
	}
	if !distinct[0].Equal(expectedNotary) {
		return fmt.Errorf(
			"%w: notary of the input and reference states (%s) does not match the %s notary (%s)",
			ErrInputNotaryMismatch,
			distinct[0],
			SubjectTransaction,
			expectedNotary,
		)
	}
	return nil
}

// VerifyInputsAreOlderThanOutputs requires the backchain of the inputs, which
// is resolved outside of this package. Callers must schedule the check once
// dependency resolution completes. It always passes here.
func (*LedgerTransactionVerifier) VerifyInputsAreOlderThanOutputs() error {
	return nil
}
