// SPDX-License-Identifier: MIT

package bitmat

// Parity returns the XOR over i of a[i] ∧ b[i] (the GF(2) dot product).
// Slices must have equal length.
// Complexity: O(n).
func Parity(a, b []bool) bool {
	var p bool
	var i int
	for i = range a {
		if a[i] && b[i] {
			p = !p
		}
	}

	return p
}

// Count returns the number of set entries in v.
func Count(v []bool) int {
	var c int
	for _, b := range v {
		if b {
			c++
		}
	}

	return c
}

// RemoveAt returns a copy of v without element k.
// Complexity: O(n).
func RemoveAt[T any](v []T, k int) []T {
	out := make([]T, 0, len(v)-1)
	out = append(out, v[:k]...)

	return append(out, v[k+1:]...)
}

// Select returns out with out[i] = v[axes[i]]. axes must be validated by the caller.
// Complexity: O(n).
func Select[T any](v []T, axes []int) []T {
	out := make([]T, len(axes))
	for i, a := range axes {
		out[i] = v[a]
	}

	return out
}

// Concat returns a new slice holding a followed by b.
func Concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
