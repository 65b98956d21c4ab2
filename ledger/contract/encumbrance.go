// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"fmt"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/ledger/txs"
)

// EncumbranceViolation is the exception class name of encumbrance failures.
const EncumbranceViolation = "EncumbranceViolation"

type encumbranceKey struct {
	txID ids.ID
	tag  string
}

// VerifyEncumbrance returns a failure for every input used more than once,
// followed by a failure for every input whose encumbrance group isn't
// consumed exactly. It never returns an error.
func VerifyEncumbrance(inputs []txs.StateAndRef) []VerificationFailure {
	failures := verifyNoDuplicateInputs(inputs)
	return append(failures, verifyEncumbranceGroupsComplete(inputs)...)
}

func verifyNoDuplicateInputs(inputs []txs.StateAndRef) []VerificationFailure {
	var (
		order  []txs.StateAndRef
		counts = make(map[txs.StateRef]int, len(inputs))
	)
	for _, input := range inputs {
		if counts[input.Ref] == 0 {
			order = append(order, input)
		}
		counts[input.Ref]++
	}

	var failures []VerificationFailure
	for _, input := range order {
		n := counts[input.Ref]
		if n <= 1 {
			continue
		}
		failures = append(failures, encumbranceFailure(input, fmt.Sprintf(
			"Encumbrance check failed: State %s, %d is used %d times as input!",
			input.Ref.TransactionID,
			input.Ref.Index,
			n,
		)))
	}
	return failures
}

// Duplicated inputs count as separate occurrences of their group.
func verifyEncumbranceGroupsComplete(inputs []txs.StateAndRef) []VerificationFailure {
	var (
		order  []encumbranceKey
		groups = make(map[encumbranceKey][]txs.StateAndRef)
	)
	for _, input := range inputs {
		group := input.State.EncumbranceGroup
		if group == nil {
			continue
		}
		key := encumbranceKey{
			txID: input.Ref.TransactionID,
			tag:  group.Tag,
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], input)
	}

	var failures []VerificationFailure
	for _, key := range order {
		members := groups[key]
		present := len(members)
		declared := members[0].State.EncumbranceGroup.Size
		if uint64(present) == uint64(declared) {
			continue
		}
		for _, member := range members {
			failures = append(failures, encumbranceFailure(member, fmt.Sprintf(
				"Encumbrance check failed: State %s, %d is part of encumbrance group %s, but only %d states out of %d encumbered states are present as inputs.",
				member.Ref.TransactionID,
				member.Ref.Index,
				key.tag,
				present,
				declared,
			)))
		}
	}
	return failures
}

func encumbranceFailure(input txs.StateAndRef, msg string) VerificationFailure {
	return VerificationFailure{
		ContractClassName:       input.State.ContractType,
		ContractStateClassNames: []string{txs.ClassName(input.State.ContractState)},
		ExceptionClassName:      EncumbranceViolation,
		ExceptionMessage:        msg,
	}
}
