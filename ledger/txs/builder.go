// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

var (
	_ StructuralTransaction = (*Builder)(nil)

	ErrNilNotary     = errors.New("notary must not be nil")
	ErrNilTimeWindow = errors.New("time window must not be nil")

	errNilResolver        = errors.New("nil state resolver")
	errUnresolvedInputs   = errors.New("failed to resolve input states")
	errUnresolvedRefs     = errors.New("failed to resolve reference states")
	errResolvedCountWrong = errors.New("resolver returned an unexpected number of states")
)

// OutputState is an output added to a builder.
type OutputState struct {
	State        ContractState
	ContractType string
	// EncumbranceTag is empty for unencumbered outputs.
	EncumbranceTag string
}

// Builder is a mutable transaction that has not been signed yet. It is not
// safe for concurrent use.
type Builder struct {
	notary      *Party
	timeWindow  *TimeWindow
	signatories []keys.PublicKey
	commands    []Command
	inputs      []StateRef
	references  []StateRef
	outputs     []OutputState
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetNotary(notary Party) *Builder {
	b.notary = &notary
	return b
}

func (b *Builder) SetTimeWindowUntil(until time.Time) *Builder {
	b.timeWindow = NewTimeWindowUntil(until)
	return b
}

func (b *Builder) SetTimeWindowBetween(from, until time.Time) (*Builder, error) {
	window, err := NewTimeWindowBetween(from, until)
	if err != nil {
		return b, err
	}
	b.timeWindow = window
	return b, nil
}

func (b *Builder) AddSignatories(signatories ...keys.PublicKey) *Builder {
	b.signatories = append(b.signatories, signatories...)
	return b
}

func (b *Builder) AddCommand(command Command) *Builder {
	b.commands = append(b.commands, command)
	return b
}

func (b *Builder) AddInputStates(refs ...StateRef) *Builder {
	b.inputs = append(b.inputs, refs...)
	return b
}

func (b *Builder) AddReferenceStates(refs ...StateRef) *Builder {
	b.references = append(b.references, refs...)
	return b
}

func (b *Builder) AddOutputState(contractType string, state ContractState) *Builder {
	b.outputs = append(b.outputs, OutputState{
		State:        state,
		ContractType: contractType,
	})
	return b
}

// AddEncumberedOutputStates adds [states] to the encumbrance group [tag].
// Calling it again with the same tag grows the group.
func (b *Builder) AddEncumberedOutputStates(tag, contractType string, states ...ContractState) *Builder {
	for _, state := range states {
		b.outputs = append(b.outputs, OutputState{
			State:          state,
			ContractType:   contractType,
			EncumbranceTag: tag,
		})
	}
	return b
}

// Notary returns nil if no notary was set.
func (b *Builder) Notary() *Party {
	return b.notary
}

// TimeWindow returns nil if no time window was set.
func (b *Builder) TimeWindow() *TimeWindow {
	return b.timeWindow
}

func (b *Builder) Signatories() []keys.PublicKey {
	return b.signatories
}

func (b *Builder) Commands() []Command {
	return b.commands
}

func (b *Builder) InputStateRefs() []StateRef {
	return b.inputs
}

func (b *Builder) ReferenceStateRefs() []StateRef {
	return b.references
}

func (b *Builder) Outputs() []OutputState {
	return b.outputs
}

func (b *Builder) OutputContractStates() []ContractState {
	states := make([]ContractState, len(b.outputs))
	for i, output := range b.outputs {
		states[i] = output.State
	}
	return states
}

// EncumbranceGroups returns the declared encumbrance groups, sized by the
// number of outputs carrying each tag, in order of first appearance.
func (b *Builder) EncumbranceGroups() []EncumbranceGroup {
	var (
		groups  []EncumbranceGroup
		indices = make(map[string]int)
	)
	for _, output := range b.outputs {
		if output.EncumbranceTag == "" {
			continue
		}
		i, ok := indices[output.EncumbranceTag]
		if !ok {
			i = len(groups)
			indices[output.EncumbranceTag] = i
			groups = append(groups, EncumbranceGroup{Tag: output.EncumbranceTag})
		}
		groups[i].Size++
	}
	return groups
}

// ToLedgerTransaction resolves the inputs and references of the builder and
// returns the transaction with ID [txID]. Outputs are numbered in the order
// they were added.
func (b *Builder) ToLedgerTransaction(
	txID ids.ID,
	metadata Metadata,
	resolver StateResolver,
) (*LedgerTransaction, error) {
	switch {
	case b.notary == nil:
		return nil, ErrNilNotary
	case b.timeWindow == nil:
		return nil, ErrNilTimeWindow
	case resolver == nil:
		return nil, errNilResolver
	}

	inputs, err := resolve(resolver, b.inputs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnresolvedInputs, err)
	}
	references, err := resolve(resolver, b.references)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnresolvedRefs, err)
	}

	groups := make(map[string]uint32)
	for _, group := range b.EncumbranceGroups() {
		groups[group.Tag] = group.Size
	}
	outputs := make([]StateAndRef, len(b.outputs))
	for i, output := range b.outputs {
		state := TransactionState{
			ContractState: output.State,
			ContractType:  output.ContractType,
			Notary:        *b.notary,
		}
		if output.EncumbranceTag != "" {
			state.EncumbranceGroup = &EncumbranceGroup{
				Size: groups[output.EncumbranceTag],
				Tag:  output.EncumbranceTag,
			}
		}
		outputs[i] = StateAndRef{
			State: state,
			Ref: StateRef{
				TransactionID: txID,
				Index:         uint32(i),
			},
		}
	}

	return NewLedgerTransaction(LedgerTransactionParams{
		ID:          txID,
		Notary:      *b.notary,
		TimeWindow:  *b.timeWindow,
		Signatories: slices.Clone(b.signatories),
		Commands:    slices.Clone(b.commands),
		Metadata:    metadata,
		Inputs:      inputs,
		References:  references,
		Outputs:     outputs,
	}), nil
}

func resolve(resolver StateResolver, refs []StateRef) ([]StateAndRef, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	resolved, err := resolver.ResolveStateRefs(refs)
	if err != nil {
		return nil, err
	}
	if len(resolved) != len(refs) {
		return nil, fmt.Errorf("%w: expected %d but got %d", errResolvedCountWrong, len(refs), len(resolved))
	}
	return resolved, nil
}
