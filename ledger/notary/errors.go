// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"errors"
	"fmt"

	"github.com/ava-labs/utxoledger/ids"
)

var (
	// ErrTransactionSignature is matched by every *SignatureError.
	ErrTransactionSignature = errors.New("transaction signature verification failed")

	// ErrLegitimacy is matched by every error returned when a notary isn't
	// allowed to notarize a transaction.
	ErrLegitimacy = errors.New("notary legitimacy violated")

	ErrGroupParametersMismatch = fmt.Errorf("%w: group parameters mismatch", ErrLegitimacy)
	ErrNotaryNotAllowed        = fmt.Errorf("%w: notary not allowed", ErrLegitimacy)

	_ error = (*SignatureError)(nil)
)

// SignatureError reports an invalid signature or signatures that don't
// fulfil the notary key of a transaction.
type SignatureError struct {
	TransactionID ids.ID
	Message       string
	Cause         error
}

func (e *SignatureError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s for transaction %s: %s", ErrTransactionSignature, e.TransactionID, e.Message)
	}
	return fmt.Sprintf("%s for transaction %s: %s: %s", ErrTransactionSignature, e.TransactionID, e.Message, e.Cause)
}

func (*SignatureError) Is(target error) bool {
	return target == ErrTransactionSignature
}

func (e *SignatureError) Unwrap() error {
	return e.Cause
}
