// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/chsim/bitmat"
	"github.com/katalvlaran/chsim/phase"
)

// unitTolerance bounds |ω|-1 accepted by SetGlobalPhase and Validate.
const unitTolerance = 1e-8

// State is an n-qubit stabilizer state in CH-form.
//
// Invariants (for any State returned by this package):
//   - n ≥ 1; G, F, M are n×n; gamma, v, s have length n.
//   - G is invertible over GF(2) and G·Fᵀ = I.
//   - every gamma entry and pf lie in {1, i, -1, -i}.
//   - |omega| = 1.
//
// A State is not safe for concurrent mutation.
type State struct {
	n     int
	g     *bitmat.Dense
	f     *bitmat.Dense
	m     *bitmat.Dense
	gamma []phase.Factor
	v     []bool
	s     []bool
	omega complex128
	pf    phase.Factor
}

// New returns |0…0⟩ on n qubits: G = F = I, M = 0, γ = 1, v = s = 0, ω = pf = 1.
func New(n int) (*State, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidArgument)
	}
	g, _ := bitmat.Identity(n)
	f, _ := bitmat.Identity(n)
	m, _ := bitmat.NewDense(n, n)

	return &State{
		n:     n,
		g:     g,
		f:     f,
		m:     m,
		gamma: make([]phase.Factor, n),
		v:     make([]bool, n),
		s:     make([]bool, n),
		omega: 1,
		pf:    phase.One,
	}, nil
}

// NumQubits returns n.
func (st *State) NumQubits() int { return st.n }

// GlobalPhase returns ω.
func (st *State) GlobalPhase() complex128 { return st.omega }

// PhaseFactor returns the discrete phase pf.
func (st *State) PhaseFactor() phase.Factor { return st.pf }

// SetGlobalPhase replaces ω. The value must have unit modulus.
func (st *State) SetGlobalPhase(w complex128) error {
	if math.Abs(cmplx.Abs(w)-1) > unitTolerance {
		return fmt.Errorf("SetGlobalPhase(%v): %w", w, ErrInvalidArgument)
	}
	st.omega = w

	return nil
}

// Clone returns a deep copy.
func (st *State) Clone() *State {
	return &State{
		n:     st.n,
		g:     st.g.Clone(),
		f:     st.f.Clone(),
		m:     st.m.Clone(),
		gamma: append([]phase.Factor(nil), st.gamma...),
		v:     append([]bool(nil), st.v...),
		s:     append([]bool(nil), st.s...),
		omega: st.omega,
		pf:    st.pf,
	}
}

// Validate checks the representation invariants listed on State plus the
// symplectic condition that F·Mᵀ is symmetric.
// Complexity: O(n³).
func (st *State) Validate() error {
	if st.n < 1 || st.g.Rows() != st.n || st.f.Rows() != st.n || st.m.Rows() != st.n ||
		len(st.gamma) != st.n || len(st.v) != st.n || len(st.s) != st.n {
		return fmt.Errorf("Validate: shape: %w", ErrInvalidState)
	}
	ginv, err := bitmat.Inverse(st.g)
	if err != nil {
		return fmt.Errorf("Validate: G: %v: %w", err, ErrInvalidState)
	}
	if !st.f.Equal(ginv.Transpose()) {
		return fmt.Errorf("Validate: F ≠ (G⁻¹)ᵀ: %w", ErrInvalidState)
	}
	fm, err := bitmat.Mul(st.f, st.m.Transpose())
	if err != nil || !fm.Equal(fm.Transpose()) {
		return fmt.Errorf("Validate: F·Mᵀ not symmetric: %w", ErrInvalidState)
	}
	for p, g := range st.gamma {
		if !g.IsQuarter() {
			return fmt.Errorf("Validate: gamma[%d]=%s: %w", p, g, ErrInvalidState)
		}
	}
	if !st.pf.IsQuarter() {
		return fmt.Errorf("Validate: pf=%s: %w", st.pf, ErrInvalidState)
	}
	if math.Abs(cmplx.Abs(st.omega)-1) > unitTolerance {
		return fmt.Errorf("Validate: |omega|=%g: %w", cmplx.Abs(st.omega), ErrInvalidState)
	}

	return nil
}

// Snapshot is a deep copy of the CH-form data, used for tableau dumps and tests.
type Snapshot struct {
	NumQubits   int
	G, F, M     *bitmat.Dense
	Gamma       []phase.Factor
	V, S        []bool
	Omega       complex128
	PhaseFactor phase.Factor
}

// Snapshot returns a deep copy of the internal representation.
func (st *State) Snapshot() Snapshot {
	c := st.Clone()

	return Snapshot{
		NumQubits:   c.n,
		G:           c.g,
		F:           c.f,
		M:           c.m,
		Gamma:       c.gamma,
		V:           c.v,
		S:           c.s,
		Omega:       c.omega,
		PhaseFactor: c.pf,
	}
}

// checkQubit validates a single index.
func (st *State) checkQubit(op string, q int) error {
	if q < 0 || q >= st.n {
		return fmt.Errorf("%s(%d): qubit out of range [0,%d): %w", op, q, st.n, ErrInvalidArgument)
	}

	return nil
}

// rotateOmega multiplies ω by an eighth root of unity and renormalizes.
func (st *State) rotateOmega(p phase.Factor) {
	w := st.omega * p.Complex()
	st.omega = w / complex(cmplx.Abs(w), 0)
}
