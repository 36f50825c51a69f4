package phase_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/chsim/phase"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestFactorGroupLaws checks closure, identity, inverse and sign flip over all 64 pairs.
func TestFactorGroupLaws(t *testing.T) {
	for a := 0; a < 8; a++ {
		p := phase.FromInt(a)
		require.Equal(t, p, p.Mul(phase.One))
		require.Equal(t, phase.One, p.Mul(p.Conj()))
		require.Equal(t, p, p.Flipped().Flipped())
		require.InDelta(t, 0, cmplx.Abs(p.Flipped().Complex()+p.Complex()), eps)

		for b := 0; b < 8; b++ {
			q := phase.FromInt(b)
			got := p.Mul(q).Complex()
			want := p.Complex() * q.Complex()
			require.InDelta(t, 0, cmplx.Abs(got-want), eps, "k=%d,%d", a, b)
		}
	}
}

// TestFactorIntRoundTrip covers wrap-around of negative and large exponents.
func TestFactorIntRoundTrip(t *testing.T) {
	require.Equal(t, phase.Exp7IPi4, phase.FromInt(-1))
	require.Equal(t, phase.I, phase.FromInt(10))
	for k := 0; k < 8; k++ {
		require.Equal(t, k, phase.FromInt(k).Int())
	}
	require.Equal(t, phase.MinusI, phase.I.Conj())
	require.True(t, phase.MinusI.IsQuarter())
	require.False(t, phase.ExpIPi4.IsQuarter())
}

// TestFactorComplexExact ensures quarter phases convert without rounding.
func TestFactorComplexExact(t *testing.T) {
	require.Equal(t, complex128(1), phase.One.Complex())
	require.Equal(t, complex128(1i), phase.I.Complex())
	require.Equal(t, complex128(-1), phase.MinusOne.Complex())
	require.Equal(t, complex128(-1i), phase.MinusI.Complex())

	e := phase.ExpIPi4.Complex()
	require.InDelta(t, math.Sqrt2/2, real(e), eps)
	require.InDelta(t, math.Sqrt2/2, imag(e), eps)
	require.Equal(t, "e^{3iπ/4}", phase.Exp3IPi4.String())
	require.Equal(t, "-i", phase.MinusI.String())
}
