// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "golang.org/x/exp/slices"

type Sortable[T any] interface {
	Less(T) bool
}

// Sort sorts the elements of [s] in place.
func Sort[T Sortable[T]](s []T) {
	slices.SortFunc(s, T.Less)
}

// SortedClone returns a sorted copy of [s].
func SortedClone[T Sortable[T]](s []T) []T {
	sorted := slices.Clone(s)
	Sort(sorted)
	return sorted
}

// IsSortedAndUnique returns true iff the elements in [s] are unique and
// sorted.
func IsSortedAndUnique[T Sortable[T]](s []T) bool {
	for i := 0; i < len(s)-1; i++ {
		if !s[i].Less(s[i+1]) {
			return false
		}
	}
	return true
}
