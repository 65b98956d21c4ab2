// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/utxoledger/ids"
	"github.com/ava-labs/utxoledger/ledger/txs"
)

// MissingFailureMessage replaces the message of errors that don't provide one.
const MissingFailureMessage = "The thrown exception did not provide a failure message."

// ErrContractVerification is matched by every *VerificationError.
var ErrContractVerification = errors.New("contract verification failed")

var _ error = (*VerificationError)(nil)

// VerificationFailure describes one failed check of a transaction. It carries
// the class name and message of the originating error, never the error
// itself.
type VerificationFailure struct {
	ContractClassName       string   `json:"contractClassName"`
	ContractStateClassNames []string `json:"contractStateClassNames"`
	ExceptionClassName      string   `json:"exceptionClassName"`
	ExceptionMessage        string   `json:"exceptionMessage"`
}

func (f VerificationFailure) String() string {
	return fmt.Sprintf(
		"%s (states %s): %s: %s",
		f.ContractClassName,
		strings.Join(f.ContractStateClassNames, ", "),
		f.ExceptionClassName,
		f.ExceptionMessage,
	)
}

// ClassNamer lets an error report the class name recorded in failures
// instead of its Go type.
type ClassNamer interface {
	ClassName() string
}

func newFailure(contractClassName string, stateClassNames []string, err error) VerificationFailure {
	return VerificationFailure{
		ContractClassName:       contractClassName,
		ContractStateClassNames: stateClassNames,
		ExceptionClassName:      exceptionClassName(err),
		ExceptionMessage:        exceptionMessage(err),
	}
}

func exceptionClassName(err error) string {
	if namer, ok := err.(ClassNamer); ok {
		return namer.ClassName()
	}
	return txs.ClassName(err)
}

func exceptionMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MissingFailureMessage
}

// VerificationError aggregates every failure found while verifying the
// contracts of a transaction.
type VerificationError struct {
	TransactionID ids.ID
	Failures      []VerificationFailure
}

func (e *VerificationError) Error() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%s for transaction %s:", ErrContractVerification, e.TransactionID)
	for _, failure := range e.Failures {
		sb.WriteString("\n - ")
		sb.WriteString(failure.String())
	}
	return sb.String()
}

func (*VerificationError) Is(target error) bool {
	return target == ErrContractVerification
}
