// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"fmt"

	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

const (
	SubjectTransaction = "transaction"
	SubjectBuilder     = "UtxoTransactionBuilder"
)

// StructuralVerifier checks the invariants shared by builders and ledger
// transactions. [subject] names the checked object in error messages.
type StructuralVerifier struct {
	subject string
}

func NewStructuralVerifier(subject string) StructuralVerifier {
	return StructuralVerifier{subject: subject}
}

// Verify runs every structural check, returning the first violation.
func (v StructuralVerifier) Verify(tx txs.StructuralTransaction) error {
	if err := v.VerifySignatories(tx.Signatories()); err != nil {
		return err
	}
	if err := v.VerifyInputsAndOutputs(tx.InputStateRefs(), tx.OutputContractStates()); err != nil {
		return err
	}
	if err := v.VerifyCommands(tx.Commands()); err != nil {
		return err
	}
	return v.VerifyNotaryIsWhitelisted()
}

func (v StructuralVerifier) VerifySignatories(signatories []keys.PublicKey) error {
	if len(signatories) == 0 {
		return fmt.Errorf(
			"%w: at least one signatory signing key must be applied to the current %s in order to create a signed transaction",
			ErrNoSignatories,
			v.subject,
		)
	}
	return nil
}

func (v StructuralVerifier) VerifyInputsAndOutputs(inputs []txs.StateRef, outputs []txs.ContractState) error {
	if len(inputs) == 0 && len(outputs) == 0 {
		return fmt.Errorf(
			"%w: at least one input state, or one output state must be applied to the current %s",
			ErrNoInputsOrOutputs,
			v.subject,
		)
	}
	return nil
}

func (v StructuralVerifier) VerifyCommands(commands []txs.Command) error {
	if len(commands) == 0 {
		return fmt.Errorf(
			"%w: at least one command must be applied to the current %s",
			ErrNoCommands,
			v.subject,
		)
	}
	return nil
}

// VerifyNotaryIsWhitelisted will check the notary against the network wide
// allow list. No such list exists yet, so every notary passes.
func (StructuralVerifier) VerifyNotaryIsWhitelisted() error {
	return nil
}
