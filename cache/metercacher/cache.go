// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/utxoledger/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache records the latency, hit rate and size of the wrapped cache.
type Cache[K comparable, V any] struct {
	metrics
	cache.Cacher[K, V]
}

func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	cache cache.Cacher[K, V],
) (*Cache[K, V], error) {
	meterCache := &Cache[K, V]{Cacher: cache}
	return meterCache, meterCache.metrics.Initialize(namespace, registerer)
}

func (c *Cache[K, V]) Put(key K, value V) {
	start := time.Now()
	c.Cacher.Put(key, value)
	end := time.Now()
	c.put.Observe(float64(end.Sub(start)))
	c.len.Set(float64(c.Cacher.Len()))
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := time.Now()
	value, has := c.Cacher.Get(key)
	end := time.Now()
	c.get.Observe(float64(end.Sub(start)))
	if has {
		c.hit.Inc()
	} else {
		c.miss.Inc()
	}
	return value, has
}

func (c *Cache[K, _]) Evict(key K) {
	c.Cacher.Evict(key)
	c.len.Set(float64(c.Cacher.Len()))
}

func (c *Cache[_, _]) Flush() {
	c.Cacher.Flush()
	c.len.Set(float64(c.Cacher.Len()))
}
