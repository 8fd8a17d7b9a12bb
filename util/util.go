package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortedKeys returns a map's keys in ascending order.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FilterZeros drops zero values from a slice.
func FilterZeros[A constraints.Integer](nums []A) []A {
	var res []A
	for _, v := range nums {
		if v != 0 {
			res = append(res, v)
		}
	}
	return res
}
