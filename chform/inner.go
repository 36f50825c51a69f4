// SPDX-License-Identifier: MIT

package chform

import (
	"fmt"

	"github.com/katalvlaran/chsim/phase"
)

// Normalizer holds the gate sequence W with W·|A⟩ = ω_A'·pf_A'·|0…0⟩.
// Reusing it computes ⟨A|B⟩ for many B at O(n²) per replayed gate.
type Normalizer struct {
	n     int
	ops   []Gate
	omega complex128
	pf    phase.Factor
}

// NewNormalizer reduces a clone of a to |0…0⟩ with left multiplications only.
// Stage 1: Gauss-Jordan on G with CX until G = I (then F = I as well).
// Stage 2: clear M off the diagonal with CZ, then the diagonal with Sdg.
// Stage 3: clear v with H, then s with X.
// Complexity: O(n³).
func NewNormalizer(a *State) (*Normalizer, error) {
	w := a.Clone()
	nz := &Normalizer{n: a.n}
	rec := func(g Gate) error {
		nz.ops = append(nz.ops, g)

		return w.apply(g)
	}

	var i, j int
	for j = 0; j < w.n; j++ {
		if !w.g.Bit(j, j) {
			p := -1
			for i = j + 1; i < w.n; i++ {
				if w.g.Bit(i, j) {
					p = i
					break
				}
			}
			if p < 0 {
				return nil, fmt.Errorf("NewNormalizer: no pivot in column %d: %w", j, ErrInvalidState)
			}
			if err := rec(CX(p, j)); err != nil {
				return nil, fmt.Errorf("NewNormalizer: %w", err)
			}
		}
		for i = 0; i < w.n; i++ {
			if i != j && w.g.Bit(i, j) {
				if err := rec(CX(j, i)); err != nil {
					return nil, fmt.Errorf("NewNormalizer: %w", err)
				}
			}
		}
	}

	for i = 0; i < w.n; i++ {
		for j = i + 1; j < w.n; j++ {
			if w.m.Bit(i, j) {
				if err := rec(CZ(i, j)); err != nil {
					return nil, fmt.Errorf("NewNormalizer: %w", err)
				}
			}
		}
	}
	for i = 0; i < w.n; i++ {
		if w.m.Bit(i, i) {
			if err := rec(Sdg(i)); err != nil {
				return nil, fmt.Errorf("NewNormalizer: %w", err)
			}
		}
	}
	if !w.f.IsIdentity() || !w.m.IsZero() {
		return nil, fmt.Errorf("NewNormalizer: tableau not reduced: %w", ErrInvalidState)
	}
	for i = 0; i < w.n; i++ {
		if w.gamma[i] != phase.One && w.gamma[i] != phase.MinusOne {
			return nil, fmt.Errorf("NewNormalizer: gamma[%d]=%s: %w", i, w.gamma[i], ErrInvalidState)
		}
	}

	for i = 0; i < w.n; i++ {
		if w.v[i] {
			if err := rec(H(i)); err != nil {
				return nil, fmt.Errorf("NewNormalizer: %w", err)
			}
		}
	}
	for i = 0; i < w.n; i++ {
		if w.s[i] {
			if err := rec(X(i)); err != nil {
				return nil, fmt.Errorf("NewNormalizer: %w", err)
			}
		}
	}
	for i = 0; i < w.n; i++ {
		if w.v[i] || w.s[i] {
			return nil, fmt.Errorf("NewNormalizer: basis not cleared at %d: %w", i, ErrInvalidState)
		}
	}

	nz.omega = w.omega
	nz.pf = w.pf

	return nz, nil
}

// Gates returns a copy of the recorded reduction sequence.
func (nz *Normalizer) Gates() []Gate {
	return append([]Gate(nil), nz.ops...)
}

// InnerProduct returns ⟨A|B⟩ for the A this normalizer was built from.
// W is unitary, so ⟨A|B⟩ = ⟨W·A|W·B⟩ = conj(ω_A'·pf_A')·⟨0|W·B⟩.
func (nz *Normalizer) InnerProduct(b *State) (complex128, error) {
	if b.n != nz.n {
		return 0, fmt.Errorf("InnerProduct: %d vs %d qubits: %w", nz.n, b.n, ErrDimensionMismatch)
	}
	w := b.Clone()
	for _, g := range nz.ops {
		if err := w.apply(g); err != nil {
			return 0, fmt.Errorf("InnerProduct: replay %s: %w", g, err)
		}
	}
	amp := w.AmplitudeAtZero().MulPhase(nz.pf.Conj())
	conjOmega := complex(real(nz.omega), -imag(nz.omega))

	return conjOmega * w.omega * amp.Complex(), nil
}

// InnerProduct returns ⟨a|b⟩ without forming amplitudes.
// Complexity: O(n³).
func InnerProduct(a, b *State) (complex128, error) {
	if a.n != b.n {
		return 0, fmt.Errorf("InnerProduct: %d vs %d qubits: %w", a.n, b.n, ErrDimensionMismatch)
	}
	nz, err := NewNormalizer(a)
	if err != nil {
		return 0, err
	}

	return nz.InnerProduct(b)
}
