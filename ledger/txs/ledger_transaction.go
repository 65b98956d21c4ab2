// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

var (
	_ StructuralTransaction = (*LedgerTransaction)(nil)
	_ NotarizedTransaction  = (*LedgerTransaction)(nil)
	_ NotarizedTransaction  = (*FilteredTransaction)(nil)
)

// StructuralTransaction is the surface shared by builders and ledger
// transactions that structural verification inspects.
type StructuralTransaction interface {
	Signatories() []keys.PublicKey
	InputStateRefs() []StateRef
	OutputContractStates() []ContractState
	Commands() []Command
}

// NotarizedTransaction is a transaction, or a filtered view of one, that a
// notary signs.
type NotarizedTransaction interface {
	ID() ids.ID
	Notary() Party
	Metadata() Metadata
}

// LedgerTransactionParams are the contents of a ledger transaction.
type LedgerTransactionParams struct {
	ID          ids.ID
	Notary      Party
	TimeWindow  TimeWindow
	Signatories []keys.PublicKey
	Commands    []Command
	Metadata    Metadata
	Inputs      []StateAndRef
	References  []StateAndRef
	Outputs     []StateAndRef
}

// LedgerTransaction is a finalized transaction whose inputs and references
// have been resolved. It is immutable and safe for concurrent use.
type LedgerTransaction struct {
	params LedgerTransactionParams
}

func NewLedgerTransaction(params LedgerTransactionParams) *LedgerTransaction {
	params.Signatories = slices.Clone(params.Signatories)
	params.Commands = slices.Clone(params.Commands)
	params.Inputs = slices.Clone(params.Inputs)
	params.References = slices.Clone(params.References)
	params.Outputs = slices.Clone(params.Outputs)
	return &LedgerTransaction{params: params}
}

func (tx *LedgerTransaction) ID() ids.ID {
	return tx.params.ID
}

func (tx *LedgerTransaction) Notary() Party {
	return tx.params.Notary
}

func (tx *LedgerTransaction) TimeWindow() TimeWindow {
	return tx.params.TimeWindow
}

func (tx *LedgerTransaction) Metadata() Metadata {
	return tx.params.Metadata
}

func (tx *LedgerTransaction) Signatories() []keys.PublicKey {
	return slices.Clone(tx.params.Signatories)
}

func (tx *LedgerTransaction) Commands() []Command {
	return slices.Clone(tx.params.Commands)
}

func (tx *LedgerTransaction) Inputs() []StateAndRef {
	return slices.Clone(tx.params.Inputs)
}

func (tx *LedgerTransaction) References() []StateAndRef {
	return slices.Clone(tx.params.References)
}

func (tx *LedgerTransaction) Outputs() []StateAndRef {
	return slices.Clone(tx.params.Outputs)
}

func (tx *LedgerTransaction) InputStateRefs() []StateRef {
	return refsOf(tx.params.Inputs)
}

func (tx *LedgerTransaction) ReferenceStateRefs() []StateRef {
	return refsOf(tx.params.References)
}

func (tx *LedgerTransaction) InputTransactionStates() []TransactionState {
	return statesOf(tx.params.Inputs)
}

func (tx *LedgerTransaction) ReferenceTransactionStates() []TransactionState {
	return statesOf(tx.params.References)
}

func (tx *LedgerTransaction) OutputTransactionStates() []TransactionState {
	return statesOf(tx.params.Outputs)
}

func (tx *LedgerTransaction) OutputContractStates() []ContractState {
	states := make([]ContractState, len(tx.params.Outputs))
	for i, output := range tx.params.Outputs {
		states[i] = output.State.ContractState
	}
	return states
}

func refsOf(states []StateAndRef) []StateRef {
	refs := make([]StateRef, len(states))
	for i, state := range states {
		refs[i] = state.Ref
	}
	return refs
}

func statesOf(states []StateAndRef) []TransactionState {
	txStates := make([]TransactionState, len(states))
	for i, state := range states {
		txStates[i] = state.State
	}
	return txStates
}

// FilteredTransaction reveals only what a notary needs to see of a dependency
// transaction: its ID, notary, metadata and output refs.
type FilteredTransaction struct {
	id         ids.ID
	notary     Party
	metadata   Metadata
	outputRefs []StateRef
}

// Filter returns the filtered view of [tx].
func Filter(tx *LedgerTransaction) *FilteredTransaction {
	return &FilteredTransaction{
		id:         tx.ID(),
		notary:     tx.Notary(),
		metadata:   tx.Metadata(),
		outputRefs: refsOf(tx.params.Outputs),
	}
}

func (tx *FilteredTransaction) ID() ids.ID {
	return tx.id
}

func (tx *FilteredTransaction) Notary() Party {
	return tx.notary
}

func (tx *FilteredTransaction) Metadata() Metadata {
	return tx.metadata
}

func (tx *FilteredTransaction) OutputStateRefs() []StateRef {
	return slices.Clone(tx.outputRefs)
}
