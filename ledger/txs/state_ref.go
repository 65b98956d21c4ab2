// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/utxoledger/ids"
)

var errMalformedStateRef = errors.New("malformed state ref")

// StateRef identifies the [Index]th output of the transaction [TransactionID].
type StateRef struct {
	TransactionID ids.ID `json:"transactionID"`
	Index         uint32 `json:"index"`
}

// StateRefFromString parses the output of StateRef.String.
func StateRefFromString(s string) (StateRef, error) {
	sep := strings.LastIndexByte(s, ':')
	if sep < 0 {
		return StateRef{}, fmt.Errorf("%w: %q", errMalformedStateRef, s)
	}
	txID, err := ids.FromString(s[:sep])
	if err != nil {
		return StateRef{}, fmt.Errorf("%w: %w", errMalformedStateRef, err)
	}
	index, err := strconv.ParseUint(s[sep+1:], 10, 32)
	if err != nil {
		return StateRef{}, fmt.Errorf("%w: %w", errMalformedStateRef, err)
	}
	return StateRef{
		TransactionID: txID,
		Index:         uint32(index),
	}, nil
}

func (r StateRef) String() string {
	return fmt.Sprintf("%s:%d", r.TransactionID, r.Index)
}

// Compare orders refs by transaction ID and then by index.
func (r StateRef) Compare(other StateRef) int {
	if c := r.TransactionID.Compare(other.TransactionID); c != 0 {
		return c
	}
	switch {
	case r.Index < other.Index:
		return -1
	case r.Index > other.Index:
		return 1
	default:
		return 0
	}
}
