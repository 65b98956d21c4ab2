// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/utxoledger/ledger/txs"
)

var (
	_ Loader = (*Registry)(nil)

	ErrUnknownContract = errors.New("unknown contract class")

	errDuplicateContract = errors.New("contract class already registered")
	errNilFactory        = errors.New("nil contract factory")
)

// Contract verifies the transactions that consume or produce its states.
type Contract interface {
	Verify(tx *txs.LedgerTransaction) error
}

// Loader constructs contracts by class name. Implementations may load
// untrusted code, in which case they must impose their own resource limits.
type Loader interface {
	Instantiate(className string) (Contract, error)
}

// Factory constructs a fresh contract instance.
type Factory func() Contract

// Registry is an in-process Loader of contracts registered by class name.
type Registry struct {
	lock      sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

func (r *Registry) Register(className string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", errNilFactory, className)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.factories[className]; ok {
		return fmt.Errorf("%w: %s", errDuplicateContract, className)
	}
	r.factories[className] = factory
	return nil
}

func (r *Registry) Instantiate(className string) (Contract, error) {
	r.lock.RLock()
	factory, ok := r.factories[className]
	r.lock.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, className)
	}
	return factory(), nil
}
