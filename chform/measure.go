// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/chsim/phase"
)

// QubitState is the Z-basis status of one qubit.
type QubitState uint8

const (
	// DeterminedZero: measuring yields false with certainty.
	DeterminedZero QubitState = iota
	// DeterminedOne: measuring yields true with certainty.
	DeterminedOne
	// Superposition: both outcomes have probability 1/2.
	Superposition
)

// IsDetermined reports whether the outcome is certain.
func (q QubitState) IsDetermined() bool { return q != Superposition }

// Value returns the certain outcome. Meaningless for Superposition.
func (q QubitState) Value() bool { return q == DeterminedOne }

func (q QubitState) String() string {
	switch q {
	case DeterminedZero:
		return "Determined(0)"
	case DeterminedOne:
		return "Determined(1)"
	case Superposition:
		return "Superposition"
	default:
		return fmt.Sprintf("QubitState(%d)", uint8(q))
	}
}

// determinedAs maps a bit to its Determined state.
func determinedAs(b bool) QubitState {
	if b {
		return DeterminedOne
	}

	return DeterminedZero
}

// QubitState reports whether qubit q is determined in the Z basis.
// Complexity: O(n).
func (st *State) QubitState(q int) (QubitState, error) {
	if err := st.checkQubit("QubitState", q); err != nil {
		return 0, err
	}

	return st.qubitState(q), nil
}

// qubitState: Z_q pulls back to Z(G_q), which is a definite sign iff G_q
// touches no Hadamard-flagged qubit.
func (st *State) qubitState(q int) QubitState {
	g := st.g.Row(q)
	var val bool
	for i := 0; i < st.n; i++ {
		if !g[i] {
			continue
		}
		if st.v[i] {
			return Superposition
		}
		if st.s[i] {
			val = !val
		}
	}

	return determinedAs(val)
}

// Project applies the normalized projector onto qubit q = outcome.
// A determined qubit with the matching value is left untouched; the opposite
// value returns ErrMeasurementInconsistent and the state is unchanged.
// Complexity: O(n²).
func (st *State) Project(q int, outcome bool) error {
	if err := st.checkQubit("Project", q); err != nil {
		return err
	}
	if err := st.project(q, outcome); err != nil {
		return fmt.Errorf("Project(%d,%t): %w", q, outcome, err)
	}

	return nil
}

func (st *State) project(q int, outcome bool) error {
	qs := st.qubitState(q)
	if qs.IsDetermined() {
		if qs.Value() == outcome {
			return nil
		}

		return ErrMeasurementInconsistent
	}

	g := st.g.Row(q)
	t := append([]bool(nil), st.s...)
	u := make([]bool, st.n)
	var alpha bool
	for i := 0; i < st.n; i++ {
		u[i] = st.s[i] != (g[i] && st.v[i])
		if g[i] && !st.v[i] && st.s[i] {
			alpha = !alpha
		}
	}

	delta := phase.One
	if alpha != outcome {
		delta = phase.MinusOne
	}

	return st.resolve(t, u, delta)
}

// Measure samples qubit q in the Z basis and projects onto the outcome.
// Determined qubits consume no randomness. A nil rng uses the default seed.
func (st *State) Measure(q int, rng *rand.Rand) (bool, error) {
	if err := st.checkQubit("Measure", q); err != nil {
		return false, err
	}
	qs := st.qubitState(q)
	if qs.IsDetermined() {
		return qs.Value(), nil
	}
	outcome := coin(rng)
	if err := st.project(q, outcome); err != nil {
		return false, fmt.Errorf("Measure(%d): %w", q, err)
	}

	return outcome, nil
}
