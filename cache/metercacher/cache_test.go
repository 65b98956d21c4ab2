// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/utxoledger/cache"
	"github.com/ava-labs/utxoledger/ids"
)

func TestMeteredCache(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	c, err := New[ids.ID, int64]("test", registry, cache.NewLRU[ids.ID, int64](2))
	require.NoError(err)

	id1 := ids.ID{1}
	_, found := c.Get(id1)
	require.False(found)

	c.Put(id1, 1)
	value, found := c.Get(id1)
	require.True(found)
	require.Equal(int64(1), value)

	require.Equal(float64(1), testutil.ToFloat64(c.hit))
	require.Equal(float64(1), testutil.ToFloat64(c.miss))
	require.Equal(float64(1), testutil.ToFloat64(c.len))

	c.Put(ids.ID{2}, 2)
	c.Put(ids.ID{3}, 3)
	require.Equal(float64(2), testutil.ToFloat64(c.len))

	c.Evict(ids.ID{3})
	require.Equal(float64(1), testutil.ToFloat64(c.len))

	c.Flush()
	require.Zero(testutil.ToFloat64(c.len))
	require.Equal(2, testutil.CollectAndCount(c.get)+testutil.CollectAndCount(c.put))
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New[ids.ID, int64]("test", registry, cache.NewLRU[ids.ID, int64](1))
	require.NoError(err)

	_, err = New[ids.ID, int64]("test", registry, cache.NewLRU[ids.ID, int64](1))
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}
