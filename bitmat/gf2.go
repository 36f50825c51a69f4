// SPDX-License-Identifier: MIT

// Package bitmat - GF(2) linear algebra.
//
// Arithmetic is mod 2: addition is XOR, multiplication is AND. Elimination
// uses row pivoting (the first row at or below the diagonal with a set bit),
// which keeps results deterministic for a given input.
package bitmat

import "fmt"

// Mul returns a·b over GF(2).
// Stage 1 (Validate): a.Cols() == b.Rows().
// Stage 2 (Execute): for each set a[i][k], XOR row k of b into row i of the result.
// Complexity: O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]bool, a.r*b.c)}
	var i, k int
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			if a.data[i*a.c+k] {
				out.XorRowVec(i, b.Row(k))
			}
		}
	}

	return out, nil
}

// Inverse returns m⁻¹ over GF(2).
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Prepare): working copy W = m, result R = I.
//	Stage 3 (Execute): Gauss–Jordan; every row op on W is mirrored on R.
//	Stage 4 (Finalize): W == I, so R == m⁻¹.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	w := m.Clone()
	inv, _ := Identity(n) // n>0 by construction of m

	var col, row, p int
	for col = 0; col < n; col++ {
		p = -1
		for row = col; row < n; row++ {
			if w.data[row*n+col] {
				p = row
				break
			}
		}
		if p < 0 {
			return nil, fmt.Errorf("Inverse: no pivot in column %d: %w", col, ErrSingular)
		}
		w.swapRows(p, col)
		inv.swapRows(p, col)
		for row = 0; row < n; row++ {
			if row != col && w.data[row*n+col] {
				w.XorRow(row, col)
				inv.XorRow(row, col)
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b in place.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := m.Row(a), m.Row(b)
	var j int
	for j = range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
