package chform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/chsim/chform"
	"github.com/stretchr/testify/require"
)

// TestQubitStateBell: each half of a Bell pair is undetermined until the
// other is measured, after which it must agree. Measuring a determined
// qubit leaves the state untouched.
func TestQubitStateBell(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		st, err := chform.New(2)
		require.NoError(t, err)
		require.NoError(t, st.ApplyAll(chform.H(0), chform.CX(0, 1)))

		for q := 0; q < 2; q++ {
			qs, err := st.QubitState(q)
			require.NoError(t, err)
			require.Equal(t, chform.Superposition, qs)
		}

		got, err := st.Measure(0, chform.NewRand(seed))
		require.NoError(t, err)
		qs, err := st.QubitState(1)
		require.NoError(t, err)
		require.True(t, qs.IsDetermined())
		require.Equal(t, got, qs.Value())

		before := st.Snapshot()
		again, err := st.Measure(0, nil)
		require.NoError(t, err)
		require.Equal(t, got, again)
		partner, err := st.Measure(1, chform.NewRand(seed+100))
		require.NoError(t, err)
		require.Equal(t, got, partner)
		require.Equal(t, before, st.Snapshot(), "determined measurement mutated the state")
	}
}

// TestProjectMatchesStatevector projects random states onto random outcomes.
func TestProjectMatchesStatevector(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	checked := 0
	for trial := 0; trial < 80; trial++ {
		n := 1 + r.Intn(4)
		st, sv := run(t, randomProgram(t, r, n, 5+r.Intn(30)))
		q := r.Intn(n)
		outcome := r.Intn(2) == 1

		p1, err := sv.Probability(q)
		require.NoError(t, err)
		qs, err := st.QubitState(q)
		require.NoError(t, err)
		switch qs {
		case chform.Superposition:
			require.InDelta(t, 0.5, p1, tol)
		case chform.DeterminedOne:
			require.InDelta(t, 1, p1, tol)
		case chform.DeterminedZero:
			require.InDelta(t, 0, p1, tol)
		}

		if qs.IsDetermined() && qs.Value() != outcome {
			before := st.Clone()
			require.ErrorIs(t, st.Project(q, outcome), chform.ErrMeasurementInconsistent)
			ip, err := chform.InnerProduct(before, st)
			require.NoError(t, err)
			requireComplex(t, 1, ip)
			continue
		}

		require.NoError(t, st.Project(q, outcome))
		require.NoError(t, sv.Project(q, outcome))
		requireMatches(t, sv, st, "trial %d", trial)
		require.NoError(t, st.Validate())

		after, err := st.QubitState(q)
		require.NoError(t, err)
		require.Equal(t, outcome, after.Value())
		require.True(t, after.IsDetermined())
		checked++
	}
	require.Greater(t, checked, 20)
}

// TestMeasureDeterministicSeed: equal seeds give equal outcome sequences.
func TestMeasureDeterministicSeed(t *testing.T) {
	sample := func(seed int64) []bool {
		st, err := chform.New(4)
		require.NoError(t, err)
		for q := 0; q < 4; q++ {
			require.NoError(t, st.Apply(chform.H(q)))
		}
		rng := chform.NewRand(seed)
		out := make([]bool, 4)
		for q := range out {
			out[q], err = st.Measure(q, rng)
			require.NoError(t, err)
		}

		return out
	}
	require.Equal(t, sample(99), sample(99))
	require.Equal(t, sample(0), sample(1))
}

func TestMeasureBadIndex(t *testing.T) {
	st, err := chform.New(1)
	require.NoError(t, err)
	_, err = st.Measure(1, nil)
	require.ErrorIs(t, err, chform.ErrInvalidArgument)
	_, err = st.QubitState(-1)
	require.ErrorIs(t, err, chform.ErrInvalidArgument)
	require.ErrorIs(t, st.Project(3, true), chform.ErrInvalidArgument)
	require.Equal(t, "Superposition", chform.Superposition.String())
	require.Equal(t, "Determined(1)", chform.DeterminedOne.String())
}
