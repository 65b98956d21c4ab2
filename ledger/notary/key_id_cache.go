// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notary

import (
	"github.com/ava-labs/utxoledger/cache"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/hashing"
)

var (
	_ KeyIDCache = (keyIDMap)(nil)
	_ KeyIDCache = (*cachedKeyIDs)(nil)
)

// KeyIDs maps the IDs of the leaves of a notary key to the leaves. It must not
// be modified once cached.
type KeyIDs map[hashing.SecureHash]keys.PublicKey

// KeyIDCacheKey identifies the key IDs of one notary key under one digest
// algorithm.
type KeyIDCacheKey struct {
	NotaryKey string
	Algorithm string
}

func newKeyIDCacheKey(notaryKey keys.PublicKey, algorithm string) KeyIDCacheKey {
	return KeyIDCacheKey{
		NotaryKey: keys.Fingerprint(notaryKey),
		Algorithm: algorithm,
	}
}

// KeyIDCache amortizes the computation of leaf key IDs across signature
// verifications.
type KeyIDCache interface {
	Get(notaryKey keys.PublicKey, algorithm string) (KeyIDs, bool)
	Put(notaryKey keys.PublicKey, algorithm string, keyIDs KeyIDs)
}

type keyIDMap map[KeyIDCacheKey]KeyIDs

// NewKeyIDCache returns an unbounded cache that is not safe for concurrent
// use. It is meant to be owned by a single verification call site.
func NewKeyIDCache() KeyIDCache {
	return keyIDMap{}
}

func (m keyIDMap) Get(notaryKey keys.PublicKey, algorithm string) (KeyIDs, bool) {
	keyIDs, ok := m[newKeyIDCacheKey(notaryKey, algorithm)]
	return keyIDs, ok
}

func (m keyIDMap) Put(notaryKey keys.PublicKey, algorithm string, keyIDs KeyIDs) {
	m[newKeyIDCacheKey(notaryKey, algorithm)] = keyIDs
}

type cachedKeyIDs struct {
	cache cache.Cacher[KeyIDCacheKey, KeyIDs]
}

// NewCachedKeyIDCache stores key IDs in [c]. It is safe for concurrent use if
// [c] is.
func NewCachedKeyIDCache(c cache.Cacher[KeyIDCacheKey, KeyIDs]) KeyIDCache {
	return &cachedKeyIDs{cache: c}
}

// NewConcurrentKeyIDCache returns a cache, safe for concurrent use, holding
// the key IDs of at most [size] notary key and algorithm pairs.
func NewConcurrentKeyIDCache(size int) KeyIDCache {
	return NewCachedKeyIDCache(cache.NewLRU[KeyIDCacheKey, KeyIDs](size))
}

func (c *cachedKeyIDs) Get(notaryKey keys.PublicKey, algorithm string) (KeyIDs, bool) {
	return c.cache.Get(newKeyIDCacheKey(notaryKey, algorithm))
}

func (c *cachedKeyIDs) Put(notaryKey keys.PublicKey, algorithm string, keyIDs KeyIDs) {
	c.cache.Put(newKeyIDCacheKey(notaryKey, algorithm), keyIDs)
}
