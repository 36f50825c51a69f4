package chform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/statevector"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// randomGate draws a uniformly random gate valid on n qubits.
func randomGate(r *rand.Rand, n int) chform.Gate {
	for {
		k := chform.Kind(r.Intn(int(chform.KindSwap) + 1))
		if k.Arity() == 1 {
			return chform.Gate{Kind: k, Q0: r.Intn(n)}
		}
		if n < 2 {
			continue
		}
		a := r.Intn(n)
		b := r.Intn(n - 1)
		if b >= a {
			b++
		}

		return chform.Gate{Kind: k, Q0: a, Q1: b}
	}
}

// randomProgram builds a program with depth random gates.
func randomProgram(t *testing.T, r *rand.Rand, n, depth int) *chform.Program {
	t.Helper()
	p, err := chform.NewProgram(n)
	require.NoError(t, err)
	for i := 0; i < depth; i++ {
		require.NoError(t, p.Add(randomGate(r, n)))
	}

	return p
}

// run builds both representations of p.
func run(t *testing.T, p *chform.Program) (*chform.State, *statevector.Vector) {
	t.Helper()
	st, err := chform.FromProgram(p)
	require.NoError(t, err)
	sv, err := statevector.Run(p)
	require.NoError(t, err)

	return st, sv
}

// requireMatches asserts that st materializes to want, global phase included.
func requireMatches(t *testing.T, want *statevector.Vector, st *chform.State, msgAndArgs ...interface{}) {
	t.Helper()
	got, err := statevector.FromState(st)
	require.NoError(t, err)
	require.Equal(t, want.NumQubits, got.NumQubits)
	for i := range want.Amplitudes {
		require.InDelta(t, real(want.Amplitudes[i]), real(got.Amplitudes[i]), tol, msgAndArgs...)
		require.InDelta(t, imag(want.Amplitudes[i]), imag(got.Amplitudes[i]), tol, msgAndArgs...)
	}
}

func requireComplex(t *testing.T, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, real(want), real(got), tol, msgAndArgs...)
	require.InDelta(t, imag(want), imag(got), tol, msgAndArgs...)
}
