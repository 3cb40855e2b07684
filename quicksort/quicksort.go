// SPDX-License-Identifier: MIT

// Package quicksort implements the textbook recursive quicksort with the
// first element as pivot.
//
// Steps:
//  1. Sequences shorter than two elements are already sorted.
//  2. Take in[0] as pivot; split the rest into lesser (< pivot) and
//     greater-or-equal partitions, preserving their relative order.
//  3. Return sort(lesser) ++ pivot ++ sort(greater).
//
// The functions are pure: the input slice is never modified and a new slice
// is always returned.
//
// Time complexity: O(n log n) average, O(n²) on already-sorted input.
// Memory usage:    O(n) per recursion level.
package quicksort

import "cmp"

// Sort returns the elements of in sorted ascending.
func Sort[T cmp.Ordered](in []T) []T {
	return SortFunc(in, cmp.Less[T])
}

// SortFunc returns the elements of in sorted so that less(a, b) holds for
// every a placed before b, except between elements for which neither is less.
func SortFunc[T any](in []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(in))

	return appendSorted(out, in, less)
}

// appendSorted appends the sorted form of in to dst.
func appendSorted[T any](dst, in []T, less func(a, b T) bool) []T {
	if len(in) < 2 {
		return append(dst, in...)
	}

	pivot := in[0]
	lesser := make([]T, 0, len(in)/2)
	greater := make([]T, 0, len(in)/2)
	for _, x := range in[1:] {
		if less(x, pivot) {
			lesser = append(lesser, x)
		} else {
			greater = append(greater, x)
		}
	}

	dst = appendSorted(dst, lesser, less)
	dst = append(dst, pivot)

	return appendSorted(dst, greater, less)
}
