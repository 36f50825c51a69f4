// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"

	"github.com/katalvlaran/chsim/phase"
)

// resolve rewrites the state so that
//
//	U_C·U_H·(|t⟩ + δ·|u⟩)/√2  =  U_C'·U_H'·|s'⟩ · (phase absorbed into pf, ω)
//
// δ must be a quarter phase. The current s is overwritten.
// Stage 1: t == u collapses to a single basis term.
// Stage 2: pick a pivot among the differing indices, preferring those with
// v = 0, and fold the others into it with right-side CX/CZ.
// Stage 3: the pivot holds |0⟩ + δ'|1⟩ (up to H), rewritten canonically.
// Complexity: O(n²).
func (st *State) resolve(t, u []bool, delta phase.Factor) error {
	if !delta.IsQuarter() {
		return fmt.Errorf("resolve: delta=%s: %w", delta, ErrInvalidState)
	}

	var d0, d1 []int
	for i := 0; i < st.n; i++ {
		if t[i] == u[i] {
			continue
		}
		if st.v[i] {
			d1 = append(d1, i)
		} else {
			d0 = append(d0, i)
		}
	}

	if len(d0) == 0 && len(d1) == 0 {
		copy(st.s, t)
		switch delta {
		case phase.MinusOne:
			return fmt.Errorf("resolve: |t⟩-|t⟩ vanishes: %w", ErrInvalidState)
		case phase.I:
			st.rotateOmega(phase.ExpIPi4)
		case phase.MinusI:
			st.rotateOmega(phase.Exp7IPi4)
		}

		return nil
	}

	var q int
	if len(d0) > 0 {
		q = d0[0]
		for _, i := range d0[1:] {
			st.rightCX(q, i)
		}
		for _, i := range d1 {
			st.rightCZ(q, i)
		}
	} else {
		q = d1[0]
		for _, i := range d1[1:] {
			st.rightCX(i, q)
		}
	}

	// Factor out the term whose pivot bit is 0.
	if t[q] {
		copy(st.s, u)
		st.pf = st.pf.Mul(delta)
		if delta == phase.I || delta == phase.MinusI {
			delta = delta.Flipped()
		}
	} else {
		copy(st.s, t)
	}

	switch delta {
	case phase.One:
		st.s[q] = false
		st.v[q] = !st.v[q]
	case phase.MinusOne:
		st.s[q] = true
		st.v[q] = !st.v[q]
	case phase.I:
		if st.v[q] {
			st.rotateOmega(phase.ExpIPi4)
			st.s[q] = true
		} else {
			st.s[q] = false
			st.v[q] = true
		}
		st.rightS(q)
	case phase.MinusI:
		if st.v[q] {
			st.rotateOmega(phase.Exp7IPi4)
			st.s[q] = false
		} else {
			st.s[q] = true
			st.v[q] = true
		}
		st.rightS(q)
	}

	return nil
}
