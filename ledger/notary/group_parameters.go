// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"encoding/json"
	"time"

	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

// NotaryInfo is a notary service listed in the group parameters.
type NotaryInfo struct {
	Name      string
	PublicKey keys.PublicKey
}

// GroupParameters is the membership snapshot of a group at [Epoch].
type GroupParameters struct {
	Epoch        uint64
	ModifiedTime time.Time
	Notaries     []NotaryInfo
}

// Bytes returns the canonical encoding of the parameters.
func (p *GroupParameters) Bytes() ([]byte, error) {
	type notaryJSON struct {
		Name      string `json:"name"`
		PublicKey []byte `json:"publicKey"`
	}
	notaries := make([]notaryJSON, len(p.Notaries))
	for i, notary := range p.Notaries {
		notaries[i] = notaryJSON{
			Name:      notary.Name,
			PublicKey: notary.PublicKey.Bytes(),
		}
	}
	return json.Marshal(struct {
		Epoch        uint64       `json:"epoch"`
		ModifiedTime time.Time    `json:"modifiedTime"`
		Notaries     []notaryJSON `json:"notaries"`
	}{
		Epoch:        p.Epoch,
		ModifiedTime: p.ModifiedTime.UTC(),
		Notaries:     notaries,
	})
}

// SignedGroupParameters are group parameters identified by [Hash] and signed
// by the membership group manager.
type SignedGroupParameters struct {
	GroupParameters
	Hash      hashing.SecureHash
	Signature []byte
}

// NewSignedGroupParameters returns [params] identified by the SHA-256 hash of
// their canonical encoding.
func NewSignedGroupParameters(params GroupParameters, signature []byte) (*SignedGroupParameters, error) {
	b, err := params.Bytes()
	if err != nil {
		return nil, err
	}
	hash, err := hashing.Compute(hashing.SHA256, b)
	if err != nil {
		return nil, err
	}
	return &SignedGroupParameters{
		GroupParameters: params,
		Hash:            hash,
		Signature:       signature,
	}, nil
}

// GroupParametersLookup returns the group parameters currently in effect.
type GroupParametersLookup interface {
	CurrentGroupParameters() (*SignedGroupParameters, error)
}
