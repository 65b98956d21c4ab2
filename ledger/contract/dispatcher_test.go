// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/logging"
)

var errGeneric = errors.New("")

type illegalStateError struct {
	msg string
}

func (e *illegalStateError) Error() string {
	return e.msg
}

func (*illegalStateError) ClassName() string {
	return "IllegalStateException"
}

func stateOf(contractType string, index uint32) txs.StateAndRef {
	return txs.StateAndRef{
		State: txs.TransactionState{
			ContractState: testEscrowState{},
			ContractType:  contractType,
		},
		Ref: txs.StateRef{
			TransactionID: ids.ID{7},
			Index:         index,
		},
	}
}

func TestDispatcherAggregatesFailures(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	tx := txs.NewLedgerTransaction(txs.LedgerTransactionParams{
		ID: ids.ID{9},
		Inputs: []txs.StateAndRef{
			stateOf("ValidA", 0),
			stateOf("ValidA", 1),
			stateOf("InvalidIllegalState", 2),
		},
		Outputs: []txs.StateAndRef{
			stateOf("ValidB", 0),
			stateOf("ValidC", 1),
			stateOf("ValidC", 2),
			stateOf("InvalidGeneric", 3),
		},
	})

	loader := NewMockLoader(ctrl)
	for _, className := range []string{"ValidA", "ValidB", "ValidC"} {
		contract := NewMockContract(ctrl)
		contract.EXPECT().Verify(tx).Return(nil).Times(1)
		loader.EXPECT().Instantiate(className).Return(contract, nil).Times(1)
	}

	illegalState := NewMockContract(ctrl)
	illegalState.EXPECT().Verify(tx).Return(&illegalStateError{msg: "I have failed"}).Times(1)
	loader.EXPECT().Instantiate("InvalidIllegalState").Return(illegalState, nil).Times(1)

	generic := NewMockContract(ctrl)
	generic.EXPECT().Verify(tx).Return(errGeneric).Times(1)
	loader.EXPECT().Instantiate("InvalidGeneric").Return(generic, nil).Times(1)

	err := NewDispatcher(loader, logging.NoLog{}).Verify(tx)
	require.ErrorIs(err, ErrContractVerification)

	var verificationErr *VerificationError
	require.ErrorAs(err, &verificationErr)
	require.Equal(tx.ID(), verificationErr.TransactionID)
	require.Equal([]VerificationFailure{
		{
			ContractClassName:       "InvalidGeneric",
			ContractStateClassNames: []string{"github.com/ava-labs/utxoledger/ledger/contract.testEscrowState"},
			ExceptionClassName:      "errors.errorString",
			ExceptionMessage:        MissingFailureMessage,
		},
		{
			ContractClassName:       "InvalidIllegalState",
			ContractStateClassNames: []string{"github.com/ava-labs/utxoledger/ledger/contract.testEscrowState"},
			ExceptionClassName:      "IllegalStateException",
			ExceptionMessage:        "I have failed",
		},
	}, verificationErr.Failures)
	require.Contains(err.Error(), "I have failed")
}

func TestDispatcherSuccess(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	calls := 0
	require.NoError(registry.Register("Cash", func() Contract {
		return contractFunc(func(*txs.LedgerTransaction) error {
			calls++
			return nil
		})
	}))

	tx := txs.NewLedgerTransaction(txs.LedgerTransactionParams{
		ID:      ids.ID{1},
		Inputs:  []txs.StateAndRef{stateOf("Cash", 0)},
		Outputs: []txs.StateAndRef{stateOf("Cash", 0), stateOf("Cash", 1)},
	})
	require.NoError(NewDispatcher(registry, logging.NoLog{}).Verify(tx))
	require.Equal(1, calls)
}

type contractFunc func(*txs.LedgerTransaction) error

func (f contractFunc) Verify(tx *txs.LedgerTransaction) error {
	return f(tx)
}

func TestDispatcherIsolatesContracts(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	require.NoError(registry.Register("Panics", func() Contract {
		return contractFunc(func(*txs.LedgerTransaction) error {
			panic("contract panicked")
		})
	}))
	require.NoError(registry.Register("NilContract", func() Contract {
		return nil
	}))

	tx := txs.NewLedgerTransaction(txs.LedgerTransactionParams{
		ID: ids.ID{2},
		Inputs: []txs.StateAndRef{
			stateOf("Panics", 0),
			stateOf("Unknown", 1),
			stateOf("NilContract", 2),
		},
	})

	failures := NewDispatcher(registry, logging.NoLog{}).Failures(tx)
	require.Len(failures, 3)

	require.Equal("NilContract", failures[0].ContractClassName)
	require.Contains(failures[0].ExceptionMessage, errNilContract.Error())

	require.Equal("Panics", failures[1].ContractClassName)
	require.Equal("string", failures[1].ExceptionClassName)
	require.Equal("contract panicked", failures[1].ExceptionMessage)

	require.Equal("Unknown", failures[2].ContractClassName)
	require.Contains(failures[2].ExceptionMessage, ErrUnknownContract.Error())
}

func TestDispatcherReportsEncumbranceFirst(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	duplicate := stateOf("Cash", 0)
	tx := txs.NewLedgerTransaction(txs.LedgerTransactionParams{
		ID:     ids.ID{3},
		Inputs: []txs.StateAndRef{duplicate, duplicate},
	})

	contract := NewMockContract(ctrl)
	contract.EXPECT().Verify(tx).Return(errors.New("cash failed"))
	loader := NewMockLoader(ctrl)
	loader.EXPECT().Instantiate("Cash").Return(contract, nil)

	err := NewDispatcher(loader, logging.NoLog{}).Verify(tx)
	var verificationErr *VerificationError
	require.ErrorAs(err, &verificationErr)
	require.Len(verificationErr.Failures, 2)
	require.Equal(EncumbranceViolation, verificationErr.Failures[0].ExceptionClassName)
	require.Equal("cash failed", verificationErr.Failures[1].ExceptionMessage)
	require.Equal(
		[]string{
			"github.com/ava-labs/utxoledger/ledger/contract.testEscrowState",
			"github.com/ava-labs/utxoledger/ledger/contract.testEscrowState",
		},
		verificationErr.Failures[1].ContractStateClassNames,
	)
}

func TestRegistry(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	factory := func() Contract {
		return contractFunc(func(*txs.LedgerTransaction) error { return nil })
	}
	require.NoError(registry.Register("Cash", factory))
	require.ErrorIs(registry.Register("Cash", factory), errDuplicateContract)
	require.ErrorIs(registry.Register("Other", nil), errNilFactory)

	contract, err := registry.Instantiate("Cash")
	require.NoError(err)
	require.NotNil(contract)

	_, err = registry.Instantiate("Other")
	require.ErrorIs(err, ErrUnknownContract)
}
