// SPDX-License-Identifier: MIT

package chform

import (
	"github.com/katalvlaran/chsim/bitmat"
	"github.com/katalvlaran/chsim/phase"
)

// Left multiplication: |φ⟩ ← W·|φ⟩ for a single Clifford W.
// All indices are assumed validated by the caller.

// leftZ: Z is diagonal and commutes with every Z-image, so only γ_q flips.
func (st *State) leftZ(q int) {
	st.gamma[q] = st.gamma[q].Flipped()
}

func (st *State) leftS(q int) {
	st.m.XorRowVec(q, st.g.Row(q))
	st.gamma[q] = st.gamma[q].Mul(phase.MinusI)
}

func (st *State) leftSdg(q int) {
	st.m.XorRowVec(q, st.g.Row(q))
	st.gamma[q] = st.gamma[q].Mul(phase.I)
}

// leftX pushes X_q through U_C and U_H onto the basis string.
// Complexity: O(n).
func (st *State) leftX(q int) {
	f, m := st.f.Row(q), st.m.Row(q)

	// β counts the Z factors that meet a |1⟩ after the X/Z swap under H.
	var beta bool
	var i int
	for i = 0; i < st.n; i++ {
		if st.v[i] {
			if f[i] && m[i] {
				beta = !beta
			}
			if f[i] && st.s[i] {
				beta = !beta
			}
		} else if m[i] && st.s[i] {
			beta = !beta
		}
	}
	for i = 0; i < st.n; i++ {
		if st.v[i] {
			st.s[i] = st.s[i] != m[i]
		} else {
			st.s[i] = st.s[i] != f[i]
		}
	}
	if beta {
		st.pf = st.pf.Flipped()
	}
	st.pf = st.pf.Mul(st.gamma[q])
}

// leftY uses Y = i·X·Z.
func (st *State) leftY(q int) {
	st.leftZ(q)
	st.leftX(q)
	st.pf = st.pf.Mul(phase.I)
}

// leftCX applies CX with control c and target t.
func (st *State) leftCX(c, t int) {
	ng := st.gamma[c].Mul(st.gamma[t])
	if bitmat.Parity(st.m.Row(c), st.f.Row(t)) {
		ng = ng.Flipped()
	}
	st.gamma[c] = ng
	st.g.XorRow(t, c)
	st.f.XorRow(c, t)
	st.m.XorRow(c, t)
}

func (st *State) leftCZ(a, b int) {
	st.m.XorRowVec(a, st.g.Row(b))
	st.m.XorRowVec(b, st.g.Row(a))
}

// leftSwap permutes the tableau rows of a and b. U_H and s are untouched;
// the result describes the same vector as Permute with the transposition (a b).
func (st *State) leftSwap(a, b int) {
	if a == b {
		return
	}
	axes := make([]int, st.n)
	for i := range axes {
		axes[i] = i
	}
	axes[a], axes[b] = b, a
	st.g = permuteRows(st.g, axes)
	st.f = permuteRows(st.f, axes)
	st.m = permuteRows(st.m, axes)
	st.gamma[a], st.gamma[b] = st.gamma[b], st.gamma[a]
}

// leftH applies Hadamard to qubit q. The result is a sum of two basis terms
// which resolve() collapses back into a single CH-form.
// Complexity: O(n²).
func (st *State) leftH(q int) error {
	g, f, m := st.g.Row(q), st.f.Row(q), st.m.Row(q)
	t := make([]bool, st.n)
	u := make([]bool, st.n)

	var alpha, beta bool
	var i int
	for i = 0; i < st.n; i++ {
		if st.v[i] {
			t[i] = st.s[i] != g[i]
			u[i] = st.s[i] != m[i]
			if f[i] && m[i] {
				beta = !beta
			}
			if f[i] && st.s[i] {
				beta = !beta
			}
		} else {
			t[i] = st.s[i]
			u[i] = st.s[i] != f[i]
			if g[i] && st.s[i] {
				alpha = !alpha
			}
			if m[i] && st.s[i] {
				beta = !beta
			}
		}
	}

	delta := st.gamma[q]
	if alpha != beta {
		delta = delta.Flipped()
	}
	if alpha {
		st.pf = st.pf.Flipped()
	}

	return st.resolve(t, u, delta)
}

// leftSqrtX uses √X = H·S·H.
func (st *State) leftSqrtX(q int) error {
	if err := st.leftH(q); err != nil {
		return err
	}
	st.leftS(q)

	return st.leftH(q)
}

func (st *State) leftSqrtXdg(q int) error {
	if err := st.leftH(q); err != nil {
		return err
	}
	st.leftSdg(q)

	return st.leftH(q)
}

// permuteRows returns out with out[i,:] = m[axes[i],:].
func permuteRows(m *bitmat.Dense, axes []int) *bitmat.Dense {
	out := m.Clone()
	for i, a := range axes {
		copy(out.Row(i), m.Row(a))
	}

	return out
}
