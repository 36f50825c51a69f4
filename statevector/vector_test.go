package statevector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/statevector"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestGatesOnBasis(t *testing.T) {
	h := 1 / math.Sqrt2
	cases := []struct {
		name  string
		gates []chform.Gate
		want  []complex128
	}{
		{"h", []chform.Gate{chform.H(0)}, []complex128{complex(h, 0), complex(h, 0), 0, 0}},
		{"x1", []chform.Gate{chform.X(1)}, []complex128{0, 0, 1, 0}},
		{"y0", []chform.Gate{chform.Y(0)}, []complex128{0, 1i, 0, 0}},
		{"cx", []chform.Gate{chform.X(0), chform.CX(0, 1)}, []complex128{0, 0, 0, 1}},
		{"cz", []chform.Gate{chform.X(0), chform.X(1), chform.CZ(0, 1)}, []complex128{0, 0, 0, -1}},
		{"s", []chform.Gate{chform.X(1), chform.S(1)}, []complex128{0, 0, 1i, 0}},
		{"swap", []chform.Gate{chform.X(1), chform.Swap(0, 1)}, []complex128{0, 1, 0, 0}},
		{"sx-sx", []chform.Gate{chform.SqrtX(0), chform.SqrtX(0)}, []complex128{0, 1, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sv, err := statevector.New(2)
			require.NoError(t, err)
			for _, g := range tc.gates {
				require.NoError(t, sv.ApplyGate(g))
			}
			want, err := statevector.FromAmplitudes(tc.want)
			require.NoError(t, err)
			require.True(t, statevector.ApproxEqual(want, sv, tol), "got %v", sv.Amplitudes)
		})
	}
}

func TestApplyGateRejectsBadIndex(t *testing.T) {
	sv, err := statevector.New(1)
	require.NoError(t, err)
	require.ErrorIs(t, sv.ApplyGate(chform.CX(0, 1)), statevector.ErrInvalidArgument)
	_, err = statevector.New(0)
	require.ErrorIs(t, err, statevector.ErrInvalidArgument)
	_, err = statevector.FromAmplitudes([]complex128{1, 0, 0})
	require.ErrorIs(t, err, statevector.ErrInvalidArgument)
}

// TestKronAndPermute: |1⟩⊗|0⟩ sits at index 1; swapping the labels moves it to 2.
func TestKronAndPermute(t *testing.T) {
	one, err := statevector.FromAmplitudes([]complex128{0, 1})
	require.NoError(t, err)
	zero, err := statevector.New(1)
	require.NoError(t, err)

	k := statevector.Kron(one, zero)
	require.Equal(t, []complex128{0, 1, 0, 0}, k.Amplitudes)

	p, err := k.Permute([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 1, 0}, p.Amplitudes)

	_, err = k.Permute([]int{0, 0})
	require.ErrorIs(t, err, statevector.ErrInvalidArgument)
}

func TestProjectAndTrace(t *testing.T) {
	sv, err := statevector.New(2)
	require.NoError(t, err)
	require.NoError(t, sv.ApplyGate(chform.H(0)))
	require.NoError(t, sv.ApplyGate(chform.CX(0, 1)))

	p, err := sv.Probability(1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, tol)

	_, err = sv.PartialTraceZero(1)
	require.ErrorIs(t, err, statevector.ErrZeroProbability)

	require.NoError(t, sv.Project(0, true))
	require.InDelta(t, 1, sv.Norm(), tol)
	require.ErrorIs(t, sv.Project(1, false), statevector.ErrZeroProbability)

	sv2, err := statevector.New(3)
	require.NoError(t, err)
	require.NoError(t, sv2.ApplyGate(chform.X(2)))
	tr, err := sv2.PartialTraceZero(1)
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 1, 0}, tr.Amplitudes)
}

// TestFromStateLimit materializes a chform state and honours the cap.
func TestFromStateLimit(t *testing.T) {
	st, err := chform.New(3)
	require.NoError(t, err)
	require.NoError(t, st.ApplyAll(chform.X(0), chform.H(2)))

	sv, err := statevector.FromState(st)
	require.NoError(t, err)
	h := 1 / math.Sqrt2
	want, err := statevector.FromAmplitudes([]complex128{0, complex(h, 0), 0, 0, 0, complex(h, 0), 0, 0})
	require.NoError(t, err)
	require.True(t, statevector.ApproxEqual(want, sv, tol))

	_, err = statevector.FromStateLimit(st, 2)
	require.ErrorIs(t, err, statevector.ErrTooManyQubits)

	ip, err := statevector.InnerProduct(sv, want)
	require.NoError(t, err)
	require.InDelta(t, 1, real(ip), tol)
}
