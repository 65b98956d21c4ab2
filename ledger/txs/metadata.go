// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/ava-labs/utxoledger/utils/hashing"

const (
	LedgerModelUtxo       = "UtxoLedgerTransaction"
	DefaultLedgerVersion  = "1"
	TransactionSubtypeGen = "GENERAL"
)

// Metadata describes how a transaction was built.
type Metadata struct {
	LedgerModel        string `json:"ledgerModel"`
	LedgerVersion      string `json:"ledgerVersion"`
	TransactionSubtype string `json:"transactionSubtype"`
	// GroupParametersHash is the hash of the group parameters the transaction
	// was built against.
	GroupParametersHash hashing.SecureHash `json:"membershipGroupParametersHash"`
}

// NewMetadata returns the metadata of a general UTXO transaction built against
// the group parameters identified by [groupParametersHash].
func NewMetadata(groupParametersHash hashing.SecureHash) Metadata {
	return Metadata{
		LedgerModel:         LedgerModelUtxo,
		LedgerVersion:       DefaultLedgerVersion,
		TransactionSubtype:  TransactionSubtypeGen,
		GroupParametersHash: groupParametersHash,
	}
}
