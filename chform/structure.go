// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"

	"github.com/katalvlaran/chsim/bitmat"
)

// Discard removes qubit q, which must be determined in |0⟩.
// The remaining qubits keep their relative order. On error the state is unchanged.
// Complexity: O(n²).
func (st *State) Discard(q int) error {
	if err := st.checkQubit("Discard", q); err != nil {
		return err
	}
	if st.n == 1 {
		return fmt.Errorf("Discard(%d): last qubit: %w", q, ErrOperationInfeasible)
	}
	w := st.Clone()
	if err := w.discard(q); err != nil {
		return fmt.Errorf("Discard(%d): %w", q, err)
	}
	*st = *w

	return nil
}

// Discarded returns a copy of st without qubit q.
func (st *State) Discarded(q int) (*State, error) {
	w := st.Clone()
	if err := w.Discard(q); err != nil {
		return nil, err
	}

	return w, nil
}

// discard isolates q as a tensor factor U'⊗I_q acting on |0⟩_q, then drops it.
// Stage 1: make v_q = s_q = 0 by relabelling or cancelling basis bits.
// Stage 2: make row and column q of G equal e_q.
// Stage 3: clear row and column q of M.
// Stage 4: delete index q everywhere.
func (st *State) discard(q int) error {
	if qs := st.qubitState(q); qs != DeterminedZero {
		return fmt.Errorf("qubit is %s: %w", qs, ErrOperationInfeasible)
	}
	if err := st.clearBasisBit(q); err != nil {
		return err
	}
	if err := st.isolateG(q); err != nil {
		return err
	}
	if err := st.isolateM(q); err != nil {
		return err
	}

	var err error
	if st.g, err = st.g.RemoveRowCol(q); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidState)
	}
	if st.f, err = st.f.RemoveRowCol(q); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidState)
	}
	if st.m, err = st.m.RemoveRowCol(q); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidState)
	}
	st.gamma = bitmat.RemoveAt(st.gamma, q)
	st.v = bitmat.RemoveAt(st.v, q)
	st.s = bitmat.RemoveAt(st.s, q)
	st.n--

	return nil
}

// clearBasisBit moves a |0⟩ basis slot into position q.
func (st *State) clearBasisBit(q int) error {
	if !st.v[q] && !st.s[q] {
		return nil
	}
	k := -1
	for i := 0; i < st.n; i++ {
		if i != q && !st.v[i] && !st.s[i] {
			k = i
			break
		}
	}
	if k < 0 {
		// Two |1⟩ slots: CX(a→b) maps |1,1⟩ to |1,0⟩ and frees b.
		a, b := -1, -1
		for i := 0; i < st.n; i++ {
			if st.v[i] || !st.s[i] {
				continue
			}
			if a < 0 {
				a = i
			} else {
				b = i
				break
			}
		}
		if b < 0 {
			return fmt.Errorf("no free basis slot: %w", ErrOperationInfeasible)
		}
		st.rightCX(a, b)
		st.s[b] = false
		k = b
	}
	st.swapColumns(q, k)

	return nil
}

// isolateG reduces row q and column q of G to e_q. Left CX(q→i) acts on a
// |0⟩ control and leaves the vector alone; right CX(i→q) is compensated in s.
func (st *State) isolateG(q int) error {
	var i int
	if !st.g.Bit(q, q) {
		p := -1
		for i = 0; i < st.n; i++ {
			if i != q && st.g.Bit(q, i) {
				p = i
				break
			}
		}
		if p < 0 {
			return fmt.Errorf("G row %d is zero: %w", q, ErrInvalidState)
		}
		st.rightCX(q, p)
	}
	for i = 0; i < st.n; i++ {
		if i != q && st.g.Bit(i, q) {
			st.leftCX(q, i)
		}
	}
	for i = 0; i < st.n; i++ {
		if i == q || !st.g.Bit(q, i) {
			continue
		}
		if st.v[i] {
			return fmt.Errorf("G row %d meets Hadamard qubit %d: %w", q, i, ErrOperationInfeasible)
		}
		st.rightCX(i, q)
		if st.s[i] {
			st.s[q] = !st.s[q]
		}
	}
	if st.s[q] {
		return fmt.Errorf("qubit %d not in |0⟩ after reduction: %w", q, ErrInvalidState)
	}

	return nil
}

// isolateM clears M row q with right CZ (control |0⟩), the diagonal with a
// left Sdg, and checks that column q followed.
func (st *State) isolateM(q int) error {
	var k int
	for k = 0; k < st.n; k++ {
		if k != q && st.m.Bit(q, k) {
			st.rightCZ(q, k)
		}
	}
	if st.m.Bit(q, q) {
		st.leftSdg(q)
	}
	for k = 0; k < st.n; k++ {
		if k != q && (st.m.Bit(k, q) || st.m.Bit(q, k) || st.f.Bit(k, q) || st.f.Bit(q, k)) {
			return fmt.Errorf("qubit %d still entangled in tableau: %w", q, ErrInvalidState)
		}
	}

	return nil
}

// Kron returns a ⊗ b. Qubits of a keep indices 0..na-1; b's follow.
// Complexity: O((na+nb)²).
func Kron(a, b *State) *State {
	return &State{
		n:     a.n + b.n,
		g:     bitmat.BlockDiag(a.g, b.g),
		f:     bitmat.BlockDiag(a.f, b.f),
		m:     bitmat.BlockDiag(a.m, b.m),
		gamma: bitmat.Concat(a.gamma, b.gamma),
		v:     bitmat.Concat(a.v, b.v),
		s:     bitmat.Concat(a.s, b.s),
		omega: a.omega * b.omega,
		pf:    a.pf.Mul(b.pf),
	}
}

// Permute relabels qubits in place so that new qubit i is old qubit axes[i].
// Complexity: O(n²).
func (st *State) Permute(axes []int) error {
	p, err := st.Permuted(axes)
	if err != nil {
		return err
	}
	*st = *p

	return nil
}

// Permuted returns the relabelled copy; see Permute.
func (st *State) Permuted(axes []int) (*State, error) {
	if err := bitmat.ValidatePermutation(axes, st.n); err != nil {
		return nil, fmt.Errorf("Permute: %v: %w", err, ErrInvalidArgument)
	}
	g, _ := st.g.Permuted(axes)
	f, _ := st.f.Permuted(axes)
	m, _ := st.m.Permuted(axes)

	return &State{
		n:     st.n,
		g:     g,
		f:     f,
		m:     m,
		gamma: bitmat.Select(st.gamma, axes),
		v:     bitmat.Select(st.v, axes),
		s:     bitmat.Select(st.s, axes),
		omega: st.omega,
		pf:    st.pf,
	}, nil
}
