// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signing

import (
	"errors"
	"fmt"

	"github.com/ava-labs/utxoledger/ledger/notary"
	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

// DefaultKeyIDAlgorithm is used to identify signing keys when none is given.
const DefaultKeyIDAlgorithm = hashing.SHA256

var (
	ErrInvalidSignature = errors.New("invalid transaction signature")

	errUnsupportedKey = errors.New("key can't produce signatures")
	errKeyIDMismatch  = errors.New("signature key ID doesn't match the key")

	_ notary.SignatureService = (*Service)(nil)
)

// Service signs and verifies transactions with secp256k1 recoverable ECDSA
// over the SHA-256 hash of the transaction ID and the signature metadata.
type Service struct {
	// KeyIDAlgorithm identifies the signing key of produced signatures. If
	// empty, DefaultKeyIDAlgorithm is used.
	KeyIDAlgorithm string
}

// Sign returns the signature of [tx] by [key].
func (s *Service) Sign(
	tx txs.NotarizedTransaction,
	key *secp256k1.PrivateKey,
	metadata notary.SignatureMetadata,
) (notary.DigitalSignatureAndMetadata, error) {
	algorithm := s.KeyIDAlgorithm
	if algorithm == "" {
		algorithm = DefaultKeyIDAlgorithm
	}
	keyID, err := s.GetIDOfPublicKey(key.PublicKey(), algorithm)
	if err != nil {
		return notary.DigitalSignatureAndMetadata{}, err
	}

	msg, err := signedBytes(tx, metadata)
	if err != nil {
		return notary.DigitalSignatureAndMetadata{}, err
	}
	sig, err := key.Sign(msg)
	if err != nil {
		return notary.DigitalSignatureAndMetadata{}, err
	}
	return notary.DigitalSignatureAndMetadata{
		Signature: sig,
		By:        keyID,
		Metadata:  metadata,
	}, nil
}

func (s *Service) VerifySignature(tx txs.NotarizedTransaction, sig notary.DigitalSignatureAndMetadata, key keys.PublicKey) error {
	pk, ok := key.(*secp256k1.PublicKey)
	if !ok {
		return fmt.Errorf("%w: %s", errUnsupportedKey, key)
	}

	keyID, err := s.GetIDOfPublicKey(pk, sig.By.Algorithm())
	if err != nil {
		return err
	}
	if keyID != sig.By {
		return fmt.Errorf("%w: expected %s but got %s", errKeyIDMismatch, keyID, sig.By)
	}

	msg, err := signedBytes(tx, sig.Metadata)
	if err != nil {
		return err
	}
	if !pk.Verify(msg, sig.Signature) {
		return fmt.Errorf("%w by %s", ErrInvalidSignature, pk)
	}
	return nil
}

// GetIDOfPublicKey hashes the encoding of [key] with [algorithm].
func (*Service) GetIDOfPublicKey(key keys.PublicKey, algorithm string) (hashing.SecureHash, error) {
	return hashing.Compute(algorithm, key.Bytes())
}

func signedBytes(tx txs.NotarizedTransaction, metadata notary.SignatureMetadata) ([]byte, error) {
	metadataBytes, err := metadata.Bytes()
	if err != nil {
		return nil, err
	}
	txID := tx.ID()
	msg := make([]byte, 0, len(txID)+len(metadataBytes))
	msg = append(msg, txID[:]...)
	return append(msg, metadataBytes...), nil
}
