// SPDX-License-Identifier: MIT
// Package bitmat: sentinel error set.
// Every exported routine returns one of these sentinels, optionally wrapped
// with call-site context via fmt.Errorf("...: %w", ErrX). Tests match them
// with errors.Is. Unchecked accessors (Bit, Flip, Put) panic like slice
// indexing does; they are reserved for hot loops whose bounds are already
// validated by the caller.

package bitmat

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("bitmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("bitmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("bitmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("bitmat: matrix is not square")

	// ErrSingular is returned when elimination finds no pivot in a column.
	ErrSingular = errors.New("bitmat: singular matrix over GF(2)")

	// ErrBadPermutation is returned when axes are not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("bitmat: invalid permutation")
)
