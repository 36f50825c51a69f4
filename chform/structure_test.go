package chform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/statevector"
	"github.com/stretchr/testify/require"
)

// TestKronMatchesStatevector: A's qubits are the low indices.
func TestKronMatchesStatevector(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for trial := 0; trial < 20; trial++ {
		na, nb := 1+r.Intn(3), 1+r.Intn(3)
		a, va := run(t, randomProgram(t, r, na, r.Intn(25)))
		b, vb := run(t, randomProgram(t, r, nb, r.Intn(25)))

		k := chform.Kron(a, b)
		require.Equal(t, na+nb, k.NumQubits())
		require.NoError(t, k.Validate())
		requireMatches(t, statevector.Kron(va, vb), k, "trial %d", trial)
	}
}

// TestPermuteMatchesStatevector and checks that the inverse permutation restores the state.
func TestPermuteMatchesStatevector(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.Intn(5)
		st, sv := run(t, randomProgram(t, r, n, r.Intn(40)))
		axes := r.Perm(n)

		p, err := st.Permuted(axes)
		require.NoError(t, err)
		want, err := sv.Permute(axes)
		require.NoError(t, err)
		requireMatches(t, want, p)
		require.NoError(t, p.Validate())

		inv := make([]int, n)
		for i, a := range axes {
			inv[a] = i
		}
		require.NoError(t, p.Permute(inv))
		requireMatches(t, sv, p)
	}
}

// TestSwapIsTransposition: Swap(a, b) and Permuted with the single
// transposition (a b) describe the same vector, global phase included.
func TestSwapIsTransposition(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for trial := 0; trial < 30; trial++ {
		n := 2 + r.Intn(4)
		st, _ := run(t, randomProgram(t, r, n, r.Intn(40)))
		a, b := r.Intn(n), r.Intn(n-1)
		if b >= a {
			b++
		}
		axes := make([]int, n)
		for i := range axes {
			axes[i] = i
		}
		axes[a], axes[b] = b, a

		relabelled, err := st.Permuted(axes)
		require.NoError(t, err)
		want, err := statevector.FromState(relabelled)
		require.NoError(t, err)

		require.NoError(t, st.Apply(chform.Swap(a, b)))
		require.NoError(t, st.Validate())
		requireMatches(t, want, st, "trial %d swap(%d,%d)", trial, a, b)
	}
}

func TestPermuteRejectsBadAxes(t *testing.T) {
	st, err := chform.New(3)
	require.NoError(t, err)
	for _, axes := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 3}, {-1, 0, 1}} {
		require.ErrorIs(t, st.Permute(axes), chform.ErrInvalidArgument, "axes %v", axes)
	}
}

// TestDiscardAfterProjection projects a random qubit onto |0⟩ and drops it.
func TestDiscardAfterProjection(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	done := 0
	for trial := 0; trial < 80; trial++ {
		n := 2 + r.Intn(4)
		st, sv := run(t, randomProgram(t, r, n, r.Intn(40)))
		q := r.Intn(n)

		qs, err := st.QubitState(q)
		require.NoError(t, err)
		if qs == chform.DeterminedOne {
			require.ErrorIs(t, st.Discard(q), chform.ErrOperationInfeasible)
			continue
		}
		require.NoError(t, st.Project(q, false))
		require.NoError(t, sv.Project(q, false))

		d, err := st.Discarded(q)
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, n-1, d.NumQubits())
		require.Equal(t, n, st.NumQubits())
		require.NoError(t, d.Validate())

		want, err := sv.PartialTraceZero(q)
		require.NoError(t, err)
		requireMatches(t, want, d, "trial %d", trial)
		done++
	}
	require.Greater(t, done, 30)
}

// TestDiscardPreconditions rejects superposed, |1⟩ and last qubits untouched.
func TestDiscardPreconditions(t *testing.T) {
	st, err := chform.New(2)
	require.NoError(t, err)
	require.NoError(t, st.ApplyAll(chform.H(0), chform.X(1)))
	before := st.Clone()

	require.ErrorIs(t, st.Discard(0), chform.ErrOperationInfeasible)
	require.ErrorIs(t, st.Discard(1), chform.ErrOperationInfeasible)
	require.ErrorIs(t, st.Discard(2), chform.ErrInvalidArgument)

	ip, err := chform.InnerProduct(before, st)
	require.NoError(t, err)
	requireComplex(t, 1, ip)

	one, err := chform.New(1)
	require.NoError(t, err)
	require.ErrorIs(t, one.Discard(0), chform.ErrOperationInfeasible)
}

// TestDiscardBell: measuring one half of a Bell pair and dropping it leaves a basis state.
func TestDiscardBell(t *testing.T) {
	st, err := chform.New(2)
	require.NoError(t, err)
	require.NoError(t, st.ApplyAll(chform.H(0), chform.CX(0, 1)))
	require.NoError(t, st.Project(1, false))
	require.NoError(t, st.Discard(1))

	want, err := statevector.New(1)
	require.NoError(t, err)
	requireMatches(t, want, st)
}

// TestSnapshotIsDeep: mutating a snapshot leaves the state alone.
func TestSnapshotIsDeep(t *testing.T) {
	st, err := chform.New(2)
	require.NoError(t, err)
	require.NoError(t, st.Apply(chform.H(1)))
	snap := st.Snapshot()
	require.Equal(t, []bool{false, true}, snap.V)
	require.True(t, snap.G.IsIdentity())

	snap.V[1] = false
	snap.G.Put(0, 1, true)
	again := st.Snapshot()
	require.True(t, again.V[1])
	require.True(t, again.G.IsIdentity())
}
