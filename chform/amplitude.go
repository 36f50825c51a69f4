// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"

	"github.com/katalvlaran/chsim/bitmat"
	"github.com/katalvlaran/chsim/phase"
)

// AmplitudeAtZero returns ⟨0…0|φ⟩ / ω exactly.
// U_C fixes |0⟩, so the amplitude is pf·⟨0|U_H|s⟩, which vanishes iff some
// qubit has v = 0 and s = 1, and otherwise equals pf·2^(-|v|/2).
// Complexity: O(n).
func (st *State) AmplitudeAtZero() phase.Scalar {
	for i := 0; i < st.n; i++ {
		if !st.v[i] && st.s[i] {
			return phase.Zero
		}
	}

	return phase.NewScalar(st.pf, bitmat.Count(st.v))
}

// AmplitudeAt returns ⟨bits|φ⟩ / ω exactly; bits[i] is the value of qubit i.
// Complexity: O(n²).
func (st *State) AmplitudeAt(bits []bool) (phase.Scalar, error) {
	if len(bits) != st.n {
		return phase.Zero, fmt.Errorf("AmplitudeAt: %d bits for %d qubits: %w", len(bits), st.n, ErrInvalidArgument)
	}
	w := st.Clone()
	for i, b := range bits {
		if b {
			w.leftX(i)
		}
	}

	return w.AmplitudeAtZero(), nil
}

// Amplitude returns ⟨bits|φ⟩ as a complex number, including ω.
func (st *State) Amplitude(bits []bool) (complex128, error) {
	a, err := st.AmplitudeAt(bits)
	if err != nil {
		return 0, err
	}

	return st.omega * a.Complex(), nil
}
