// SPDX-License-Identifier: MIT

// Package bitmat - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major bit buffer with the index formula i*cols + j.
//   - Offer unchecked accessors (Bit/Put/Flip/Row) for hot loops whose indices
//     were validated at the public boundary; structural copies return errors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Bit/Put/Flip: O(1); Clone: O(r*c); Row: O(1) view.

package bitmat

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxRemove   = "RemoveRowCol" // method tag used in error wrappers
	ctxPermuted = "Permuted"     // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtOne  = '1'
	_fmtZero = '0'
)

// denseErrorf attaches method context and coordinates to a sentinel error.
// The sentinel is preserved via %w so callers can use errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major boolean matrix.
//   - r,c hold dimensions.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int    // row and column counts (>0)
	data []bool // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = true // diagonal
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Bit is the unchecked read of (row, col). It panics on bad indices.
func (m *Dense) Bit(row, col int) bool { return m.data[row*m.c+col] }

// Put is the unchecked write of (row, col). It panics on bad indices.
func (m *Dense) Put(row, col int, v bool) { m.data[row*m.c+col] = v }

// Flip toggles (row, col) without bounds validation.
func (m *Dense) Flip(row, col int) { m.data[row*m.c+col] = !m.data[row*m.c+col] }

// Row returns row i as a view into the backing buffer.
// Mutations through the view are visible in m.
func (m *Dense) Row(i int) []bool { return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c] }

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) []bool {
	out := make([]bool, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// XorRow performs row[dst] ^= row[src]. dst == src clears the row.
// Complexity: O(c).
func (m *Dense) XorRow(dst, src int) {
	d, s := m.Row(dst), m.Row(src)
	if dst == src {
		clear(d)
		return
	}
	var j int
	for j = range d {
		d[j] = d[j] != s[j]
	}
}

// XorRowVec performs row[dst] ^= v. len(v) must equal Cols().
// Complexity: O(c).
func (m *Dense) XorRowVec(dst int, v []bool) {
	d := m.Row(dst)
	var j int
	for j = range d {
		d[j] = d[j] != v[j]
	}
}

// XorCol performs col[dst] ^= col[src]. dst == src clears the column.
// Complexity: O(r).
func (m *Dense) XorCol(dst, src int) {
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		if dst == src {
			m.data[base+dst] = false
			continue
		}
		m.data[base+dst] = m.data[base+dst] != m.data[base+src]
	}
}

// XorColVec performs col[dst] ^= v. len(v) must equal Rows().
// Complexity: O(r).
func (m *Dense) XorColVec(dst int, v []bool) {
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+dst] = m.data[i*m.c+dst] != v[i]
	}
}

// IsIdentity reports whether m is a square identity matrix.
// Complexity: O(r*c).
func (m *Dense) IsIdentity() bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] != (i == j) {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every entry of m is false.
func (m *Dense) IsZero() bool {
	for _, b := range m.data {
		if b {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders rows as 0/1 strings separated by newlines.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	sb.Grow(m.r * (m.c + 1))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				sb.WriteByte(_fmtOne)
			} else {
				sb.WriteByte(_fmtZero)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
