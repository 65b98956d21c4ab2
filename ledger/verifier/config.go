// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"errors"
	"fmt"
)

var ErrInvalidKeyIDCacheSize = errors.New("key ID cache size must be positive")

var DefaultConfig = Config{
	MetricsNamespace:       "utxoledger",
	KeyIDCacheSize:         1024,
	ConcurrentVerification: true,
}

type Config struct {
	// MetricsNamespace prefixes every metric registered by the verifier.
	MetricsNamespace string `json:"metricsNamespace"`

	// KeyIDCacheSize is the number of notary key and digest algorithm pairs
	// whose leaf key IDs are kept in memory.
	KeyIDCacheSize int `json:"keyIDCacheSize"`

	// ConcurrentVerification runs contract verification and notary signature
	// verification of finalized transactions in parallel.
	ConcurrentVerification bool `json:"concurrentVerification"`
}

func (c Config) Verify() error {
	if c.KeyIDCacheSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKeyIDCacheSize, c.KeyIDCacheSize)
	}
	return nil
}
