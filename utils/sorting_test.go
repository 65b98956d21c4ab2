// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var _ Sortable[sortable] = sortable(0)

type sortable int

func (s sortable) Less(other sortable) bool {
	return s < other
}

func TestSortedClone(t *testing.T) {
	require := require.New(t)

	s := []sortable{3, 1, 2}
	sorted := SortedClone(s)
	require.Equal([]sortable{1, 2, 3}, sorted)
	require.Equal([]sortable{3, 1, 2}, s)

	Sort(s)
	require.Equal(sorted, s)
}

func TestIsSortedAndUnique(t *testing.T) {
	tests := []struct {
		name     string
		s        []sortable
		expected bool
	}{
		{
			name:     "nil",
			expected: true,
		},
		{
			name:     "single",
			s:        []sortable{1},
			expected: true,
		},
		{
			name:     "sorted",
			s:        []sortable{1, 2, 3},
			expected: true,
		},
		{
			name:     "unsorted",
			s:        []sortable{1, 3, 2},
			expected: false,
		},
		{
			name:     "duplicate",
			s:        []sortable{1, 1, 2},
			expected: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, IsSortedAndUnique(test.s))
		})
	}
}
