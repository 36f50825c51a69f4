package bitmat_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chsim/bitmat"
	"github.com/stretchr/testify/require"
)

// TestInverseRoundTrip builds random invertible matrices from elementary
// row operations and checks m·m⁻¹ == I.
func TestInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(6)
		m, err := bitmat.Identity(n)
		require.NoError(t, err)
		for k := 0; k < 4*n; k++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a != b {
				m.XorRow(a, b)
			}
		}

		inv, err := bitmat.Inverse(m)
		require.NoError(t, err)
		prod, err := bitmat.Mul(m, inv)
		require.NoError(t, err)
		require.True(t, prod.IsIdentity(), "trial %d:\n%s", trial, m)
	}
}

// TestInverseSingular ensures rank-deficient input is rejected.
func TestInverseSingular(t *testing.T) {
	m := fromRows(t, [][]bool{
		{true, true},
		{true, true},
	})

	_, err := bitmat.Inverse(m)
	require.ErrorIs(t, err, bitmat.ErrSingular)

	rect, err := bitmat.NewDense(2, 3)
	require.NoError(t, err)
	_, err = bitmat.Inverse(rect)
	require.ErrorIs(t, err, bitmat.ErrNonSquare)
}

// TestMulDimensionMismatch checks shape validation of Mul.
func TestMulDimensionMismatch(t *testing.T) {
	a, _ := bitmat.NewDense(2, 3)
	b, _ := bitmat.NewDense(2, 3)
	_, err := bitmat.Mul(a, b)
	require.ErrorIs(t, err, bitmat.ErrDimensionMismatch)
}

// TestVectorHelpers covers Parity, Count, RemoveAt, Select and Concat.
func TestVectorHelpers(t *testing.T) {
	a := []bool{true, true, false, true}
	b := []bool{true, false, true, true}
	require.False(t, bitmat.Parity(a, b)) // two overlaps
	require.True(t, bitmat.Parity(a, []bool{true, false, false, false}))
	require.Equal(t, 3, bitmat.Count(a))

	require.Equal(t, []int{1, 3}, bitmat.RemoveAt([]int{1, 2, 3}, 1))
	require.Equal(t, []int{30, 10, 20}, bitmat.Select([]int{10, 20, 30}, []int{2, 0, 1}))
	require.Equal(t, []int{1, 2, 3}, bitmat.Concat([]int{1}, []int{2, 3}))
}
