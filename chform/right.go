// SPDX-License-Identifier: MIT

package chform

import "github.com/katalvlaran/chsim/phase"

// Right multiplication: U_C ← U_C·W. These rewrite the tableau only; the
// caller is responsible for keeping the represented vector unchanged.

// rightCX(c, t): U_C ← U_C·CX(c→t).
func (st *State) rightCX(c, t int) {
	st.g.XorCol(c, t)
	st.f.XorCol(t, c)
	st.m.XorCol(c, t)
}

// rightCZ(a, b): U_C ← U_C·CZ(a,b).
func (st *State) rightCZ(a, b int) {
	fa, fb := st.f.Col(a), st.f.Col(b)
	st.m.XorColVec(a, fb)
	st.m.XorColVec(b, fa)
	for p := 0; p < st.n; p++ {
		if fa[p] && fb[p] {
			st.gamma[p] = st.gamma[p].Flipped()
		}
	}
}

// rightS(q): U_C ← U_C·S_q.
func (st *State) rightS(q int) {
	fq := st.f.Col(q)
	st.m.XorColVec(q, fq)
	for p := 0; p < st.n; p++ {
		if fq[p] {
			st.gamma[p] = st.gamma[p].Mul(phase.MinusI)
		}
	}
}

// swapColumns exchanges qubits a and b inside U_C·U_H·|s⟩ without changing
// the represented vector: U_C ← U_C·SWAP(a,b) and the (v, s) entries trade places.
func (st *State) swapColumns(a, b int) {
	if a == b {
		return
	}
	st.rightCX(b, a)
	st.rightCX(a, b)
	st.rightCX(b, a)
	st.v[a], st.v[b] = st.v[b], st.v[a]
	st.s[a], st.s[b] = st.s[b], st.s[a]
}
