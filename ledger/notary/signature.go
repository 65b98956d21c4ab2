// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"encoding/json"
	"time"

	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

// SignatureMetadata is signed together with the transaction ID.
type SignatureMetadata struct {
	Timestamp  time.Time         `json:"timestamp"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Bytes returns the canonical encoding of the metadata.
func (m SignatureMetadata) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// DigitalSignatureAndMetadata is a signature over a transaction. [By] is the
// ID of the signing key, not the key itself.
type DigitalSignatureAndMetadata struct {
	Signature []byte             `json:"signature"`
	By        hashing.SecureHash `json:"by"`
	Metadata  SignatureMetadata  `json:"metadata"`
}

// SignatureService verifies transaction signatures and derives key IDs.
type SignatureService interface {
	// VerifySignature returns an error if [sig] isn't a valid signature of
	// [tx] by [key].
	VerifySignature(tx txs.NotarizedTransaction, sig DigitalSignatureAndMetadata, key keys.PublicKey) error

	// GetIDOfPublicKey returns the ID of [key] under the digest [algorithm].
	GetIDOfPublicKey(key keys.PublicKey, algorithm string) (hashing.SecureHash, error)
}
