// SPDX-License-Identifier: MIT

package bitmat

import "fmt"

// RemoveRowCol returns a new (n-1)×(n-1) matrix with row k and column k removed.
// Stage 1 (Validate): square, n>1, 0<=k<n.
// Stage 2 (Execute): copy every surviving entry into its shifted position.
// Complexity: O(n²).
func (m *Dense) RemoveRowCol(k int) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRemove, ErrNonSquare)
	}
	if k < 0 || k >= m.r {
		return nil, denseErrorf(ctxRemove, k, k, ErrOutOfRange)
	}
	n := m.r - 1
	out, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxRemove, err)
	}

	var i, j, ni, nj int
	for i = 0; i < m.r; i++ {
		if i == k {
			continue
		}
		nj = 0
		for j = 0; j < m.c; j++ {
			if j == k {
				continue
			}
			out.data[ni*n+nj] = m.data[i*m.c+j]
			nj++
		}
		ni++
	}

	return out, nil
}

// ValidatePermutation checks that axes is a permutation of 0..n-1.
// Complexity: O(n).
func ValidatePermutation(axes []int, n int) error {
	if len(axes) != n {
		return fmt.Errorf("permutation length %d, want %d: %w", len(axes), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, a := range axes {
		if a < 0 || a >= n || seen[a] {
			return fmt.Errorf("axes[%d]=%d: %w", i, a, ErrBadPermutation)
		}
		seen[a] = true
	}

	return nil
}

// Permuted returns P with P[i][j] = m[axes[i]][axes[j]] for a square m.
// Complexity: O(n²).
func (m *Dense) Permuted(axes []int) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.%s: %w", ctxPermuted, ErrNonSquare)
	}
	if err := ValidatePermutation(axes, m.r); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxPermuted, err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]bool, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.data[axes[i]*m.c+axes[j]]
		}
	}

	return out, nil
}

// BlockDiag returns the block-diagonal matrix diag(a, b).
// Complexity: O((ra+rb)·(ca+cb)).
func BlockDiag(a, b *Dense) *Dense {
	r, c := a.r+b.r, a.c+b.c
	out := &Dense{r: r, c: c, data: make([]bool, r*c)}
	var i int
	for i = 0; i < a.r; i++ {
		copy(out.data[i*c:i*c+a.c], a.Row(i))
	}
	for i = 0; i < b.r; i++ {
		copy(out.data[(a.r+i)*c+a.c:(a.r+i)*c+c], b.Row(i))
	}

	return out
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]bool, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}
