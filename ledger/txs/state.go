// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"reflect"

	"github.com/ava-labs/utxoledger/utils/crypto/keys"
)

// ContractState is the data held by a state. Its governing contract is named by
// the enclosing TransactionState.
type ContractState interface{}

// EncumbranceGroup declares that a state is one of [Size] states, created by
// the same transaction and sharing [Tag], that must be consumed together.
type EncumbranceGroup struct {
	Size uint32 `json:"size"`
	Tag  string `json:"tag"`
}

// TransactionState is a contract state together with its notary, the contract
// class that governs it and its optional encumbrance group.
type TransactionState struct {
	ContractState    ContractState     `json:"contractState"`
	ContractType     string            `json:"contractType"`
	Notary           Party             `json:"notary"`
	EncumbranceGroup *EncumbranceGroup `json:"encumbranceGroup,omitempty"`
}

// StateAndRef is a resolved state together with its location.
type StateAndRef struct {
	State TransactionState `json:"state"`
	Ref   StateRef         `json:"ref"`
}

// Command is an instruction to the contracts of a transaction together with
// the keys that must sign for it.
type Command struct {
	Value   interface{}      `json:"value"`
	Signers []keys.PublicKey `json:"-"`
}

// ClassName returns the fully qualified name of the dynamic type of [v],
// dereferencing pointers. It returns "<nil>" for nil.
func ClassName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// StateResolver resolves refs into the states they point to, typically by
// walking the backchain of the referenced transactions.
type StateResolver interface {
	ResolveStateRefs(refs []StateRef) ([]StateAndRef, error)
}
