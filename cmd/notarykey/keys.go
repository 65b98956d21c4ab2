// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/utxoledger/ledger/signing"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/crypto/secp256k1"
	"github.com/ava-labs/utxoledger/utils/formatting"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

const (
	PublicKeysKey = "public-keys"
	GenerateKey   = "generate"
	ThresholdKey  = "threshold"
	AlgorithmKey  = "algorithm"
)

var (
	errNoKeys           = errors.New("no public keys given")
	errUnknownAlgorithm = errors.New("unknown key ID algorithm")
)

func addFlags(fs *pflag.FlagSet) {
	fs.StringSlice(PublicKeysKey, nil, "cb58 encoded compressed secp256k1 public keys of the notary")
	fs.Uint(GenerateKey, 0, "Number of fresh keys to add to the notary key")
	fs.Uint(ThresholdKey, 0, "Weight required to fulfil the notary key. 0 requires every key")
	fs.String(AlgorithmKey, signing.DefaultKeyIDAlgorithm, "Digest algorithm of the key IDs")
}

type keyConfig struct {
	PublicKeys []keys.PublicKey
	Threshold  uint32
	Algorithm  string
}

func getKeyConfig(v *viper.Viper) (keyConfig, error) {
	config := keyConfig{
		Threshold: uint32(v.GetUint(ThresholdKey)),
		Algorithm: v.GetString(AlgorithmKey),
	}
	if !hashing.IsSupported(config.Algorithm) {
		return keyConfig{}, fmt.Errorf("%w: %q", errUnknownAlgorithm, config.Algorithm)
	}

	for _, encoded := range v.GetStringSlice(PublicKeysKey) {
		b, err := formatting.DecodeCB58(encoded)
		if err != nil {
			return keyConfig{}, fmt.Errorf("couldn't decode public key %q: %w", encoded, err)
		}
		key, err := secp256k1.ToPublicKey(b)
		if err != nil {
			return keyConfig{}, fmt.Errorf("couldn't parse public key %q: %w", encoded, err)
		}
		config.PublicKeys = append(config.PublicKeys, key)
	}

	for i := uint(0); i < v.GetUint(GenerateKey); i++ {
		key, err := secp256k1.NewPrivateKey()
		if err != nil {
			return keyConfig{}, fmt.Errorf("couldn't generate key: %w", err)
		}
		config.PublicKeys = append(config.PublicKeys, key.PublicKey())
	}

	if len(config.PublicKeys) == 0 {
		return keyConfig{}, errNoKeys
	}
	return config, nil
}

type leafReport struct {
	Key   keys.PublicKey
	CB58  string
	KeyID hashing.SecureHash
}

type report struct {
	Key    keys.PublicKey
	Leaves []leafReport
}

func (r report) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("notary key: %s\n", r.Key))
	for _, leaf := range r.Leaves {
		sb.WriteString(fmt.Sprintf("  %s %s\n", leaf.CB58, leaf.KeyID))
	}
	return sb.String()
}

func describe(config keyConfig) (report, error) {
	notaryKey, err := keys.NewBuilder().AddKeys(config.PublicKeys...).Build(config.Threshold)
	if err != nil {
		return report{}, err
	}

	service := &signing.Service{}
	leaves := keys.Leaves(notaryKey)
	r := report{
		Key:    notaryKey,
		Leaves: make([]leafReport, len(leaves)),
	}
	for i, leaf := range leaves {
		encoded, err := formatting.EncodeCB58(leaf.Bytes())
		if err != nil {
			return report{}, err
		}
		keyID, err := service.GetIDOfPublicKey(leaf, config.Algorithm)
		if err != nil {
			return report{}, err
		}
		r.Leaves[i] = leafReport{
			Key:   leaf,
			CB58:  encoded,
			KeyID: keyID,
		}
	}
	return r, nil
}
