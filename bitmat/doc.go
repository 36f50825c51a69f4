// Package bitmat provides dense boolean matrices and GF(2) linear algebra.
//
// What:
//
//   - Dense: a row-major r×c bit matrix stored in one flat []bool buffer.
//   - Row/column XOR kernels used by tableau-style update rules.
//   - Structural copies: RemoveRowCol, Permuted, BlockDiag, Transpose.
//   - GF(2) algebra: Mul, Inverse (Gauss–Jordan with row pivoting).
//
// Why:
//
//   - Stabilizer tableaux are n×n boolean matrices mutated one row or one
//     column at a time. A flat buffer keeps rows contiguous, so a row is a
//     plain sub-slice and row kernels run without bounds juggling.
//
// Complexity:
//
//   - NewDense/Identity/Clone: O(r·c).
//   - XorRow/XorCol: O(c) / O(r).
//   - Inverse/Mul: O(n³).
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions.
//   - ErrOutOfRange: row/column index outside the matrix.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: square matrix required.
//   - ErrSingular: no inverse over GF(2).
//   - ErrBadPermutation: axes are not a permutation of 0..n-1.
package bitmat
