// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

var _ Cacher[struct{}, struct{}] = (*LRU[struct{}, struct{}])(nil)

// LRU is a key value store with bounded size. If the size is attempted to be
// exceeded, then the least recently used element is removed from the cache
// before the insertion is done. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	elements *lru.Cache
}

// NewLRU returns a cache holding at most max(size, 1) elements.
func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	if size < 1 {
		size = 1
	}
	// lru.New only errors on a non-positive size.
	elements, _ := lru.New(size)
	return &LRU[K, V]{elements: elements}
}

func (c *LRU[K, V]) Put(key K, value V) {
	c.elements.Add(key, value)
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	value, ok := c.elements.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return value.(V), true
}

func (c *LRU[K, _]) Evict(key K) {
	c.elements.Remove(key)
}

func (c *LRU[_, _]) Flush() {
	c.elements.Purge()
}

func (c *LRU[_, _]) Len() int {
	return c.elements.Len()
}
