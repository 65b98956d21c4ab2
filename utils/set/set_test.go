// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	require := require.New(t)
	id1 := 1

	s := Set[int]{id1: struct{}{}}

	s.Add(id1)
	require.True(s.Contains(id1))

	s.Remove(id1)
	require.False(s.Contains(id1))

	s.Add(id1)
	require.True(s.Contains(id1))
	require.Len(s.List(), 1)
	require.Equal(id1, s.List()[0])

	s.Clear()
	require.False(s.Contains(id1))

	s.Add(id1)

	s2 := Set[int]{}

	require.False(s.Overlaps(s2))

	s2.Union(s)
	require.True(s2.Contains(id1))
	require.True(s.Overlaps(s2))
	require.True(s.Equals(s2))

	s2.Difference(s)
	require.False(s2.Contains(id1))
	require.False(s.Overlaps(s2))
}

func TestSetNil(t *testing.T) {
	require := require.New(t)

	var s Set[string]
	require.Zero(s.Len())
	require.False(s.Contains("a"))

	s.Add("a", "b", "a")
	require.Equal(2, s.Len())
	require.True(s.Equals(Of("b", "a")))
}

func TestNewSetNegativeSize(t *testing.T) {
	s := NewSet[int](-1)
	require.NotNil(t, s)
	require.Zero(t, s.Len())
}
