// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/logging"
)

var errNilContract = errors.New("loader returned a nil contract")

// Dispatcher verifies the encumbrance groups and the contracts of ledger
// transactions.
type Dispatcher struct {
	loader Loader
	log    logging.Logger
}

func NewDispatcher(loader Loader, log logging.Logger) *Dispatcher {
	return &Dispatcher{
		loader: loader,
		log:    log,
	}
}

// Verify returns a *VerificationError carrying every failure of [tx], or nil
// if there are none.
func (d *Dispatcher) Verify(tx *txs.LedgerTransaction) error {
	failures := d.Failures(tx)
	if len(failures) == 0 {
		return nil
	}
	return &VerificationError{
		TransactionID: tx.ID(),
		Failures:      failures,
	}
}

// Failures returns the encumbrance failures of [tx] followed by the failures
// of its contracts in class name order. Every contract governing a state of
// [tx] is instantiated and invoked exactly once.
func (d *Dispatcher) Failures(tx *txs.LedgerTransaction) []VerificationFailure {
	failures := VerifyEncumbrance(tx.Inputs())

	stateClassNames := make(map[string][]string)
	for _, state := range append(tx.InputTransactionStates(), tx.OutputTransactionStates()...) {
		stateClassNames[state.ContractType] = append(
			stateClassNames[state.ContractType],
			txs.ClassName(state.ContractState),
		)
	}

	contractClassNames := maps.Keys(stateClassNames)
	slices.Sort(contractClassNames)
	for _, className := range contractClassNames {
		err := d.verifyContract(className, tx)
		if err == nil {
			continue
		}

		d.log.Debug("contract verification failed",
			zap.Stringer("txID", tx.ID()),
			zap.String("contract", className),
			zap.Error(err),
		)
		failures = append(failures, newFailure(className, stateClassNames[className], err))
	}
	return failures
}

func (d *Dispatcher) verifyContract(className string, tx *txs.LedgerTransaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()

	contract, err := d.loader.Instantiate(className)
	if err != nil {
		return err
	}
	if contract == nil {
		return fmt.Errorf("%w: %s", errNilContract, className)
	}
	return contract.Verify(tx)
}

var (
	_ error      = (*panicError)(nil)
	_ ClassNamer = (*panicError)(nil)
)

// panicError reports a contract that panicked instead of returning an error.
type panicError struct {
	value interface{}
}

func newPanicError(value interface{}) error {
	if err, ok := value.(error); ok {
		return err
	}
	return &panicError{value: value}
}

func (e *panicError) Error() string {
	return fmt.Sprint(e.value)
}

func (e *panicError) ClassName() string {
	return txs.ClassName(e.value)
}
