// SPDX-License-Identifier: MIT

package chform

import (
	"errors"
	"fmt"
)

// Kind enumerates the supported Clifford gates.
type Kind uint8

const (
	KindH Kind = iota
	KindX
	KindY
	KindZ
	KindS
	KindSdg
	KindSqrtX
	KindSqrtXdg
	KindCX
	KindCZ
	KindSwap
)

var kindNames = [...]string{
	KindH:       "h",
	KindX:       "x",
	KindY:       "y",
	KindZ:       "z",
	KindS:       "s",
	KindSdg:     "sdg",
	KindSqrtX:   "sx",
	KindSqrtXdg: "sxdg",
	KindCX:      "cx",
	KindCZ:      "cz",
	KindSwap:    "swap",
}

// String returns the lower-case OpenQASM mnemonic.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns 1 or 2, or 0 for an unknown kind.
func (k Kind) Arity() int {
	switch {
	case k <= KindSqrtXdg:
		return 1
	case k <= KindSwap:
		return 2
	default:
		return 0
	}
}

// Gate is one gate application. Q1 is ignored for single-qubit kinds.
type Gate struct {
	Kind Kind
	Q0   int
	Q1   int
}

func H(q int) Gate       { return Gate{Kind: KindH, Q0: q} }
func X(q int) Gate       { return Gate{Kind: KindX, Q0: q} }
func Y(q int) Gate       { return Gate{Kind: KindY, Q0: q} }
func Z(q int) Gate       { return Gate{Kind: KindZ, Q0: q} }
func S(q int) Gate       { return Gate{Kind: KindS, Q0: q} }
func Sdg(q int) Gate     { return Gate{Kind: KindSdg, Q0: q} }
func SqrtX(q int) Gate   { return Gate{Kind: KindSqrtX, Q0: q} }
func SqrtXdg(q int) Gate { return Gate{Kind: KindSqrtXdg, Q0: q} }

// CX returns a controlled-X with control c and target t.
func CX(c, t int) Gate   { return Gate{Kind: KindCX, Q0: c, Q1: t} }
func CZ(a, b int) Gate   { return Gate{Kind: KindCZ, Q0: a, Q1: b} }
func Swap(a, b int) Gate { return Gate{Kind: KindSwap, Q0: a, Q1: b} }

// Qubits returns the qubits the gate acts on, in operand order.
func (g Gate) Qubits() []int {
	if g.Kind.Arity() == 2 {
		return []int{g.Q0, g.Q1}
	}

	return []int{g.Q0}
}

// String renders the gate as an OpenQASM statement without the trailing ';'.
func (g Gate) String() string {
	if g.Kind.Arity() == 2 {
		return fmt.Sprintf("%s q[%d],q[%d]", g.Kind, g.Q0, g.Q1)
	}

	return fmt.Sprintf("%s q[%d]", g.Kind, g.Q0)
}

// Validate checks g against an n-qubit register.
func (g Gate) Validate(n int) error {
	ar := g.Kind.Arity()
	if ar == 0 {
		return fmt.Errorf("gate %s: unknown kind: %w", g.Kind, ErrInvalidArgument)
	}
	for _, q := range g.Qubits() {
		if q < 0 || q >= n {
			return fmt.Errorf("gate %s: qubit %d out of range [0,%d): %w", g, q, n, ErrInvalidArgument)
		}
	}
	if ar == 2 && g.Q0 == g.Q1 {
		return fmt.Errorf("gate %s: operands must differ: %w", g, ErrInvalidArgument)
	}

	return nil
}

// Apply left-multiplies the state by g. Indices are validated before any mutation.
func (st *State) Apply(g Gate) error {
	if err := g.Validate(st.n); err != nil {
		return err
	}
	if err := st.apply(g); err != nil {
		return fmt.Errorf("Apply(%s): %w", g, err)
	}

	return nil
}

// ApplyAll validates every gate first, then applies them in order.
func (st *State) ApplyAll(gates ...Gate) error {
	for i, g := range gates {
		if err := g.Validate(st.n); err != nil {
			return fmt.Errorf("gate #%d: %w", i, err)
		}
	}
	for i, g := range gates {
		if err := st.apply(g); err != nil {
			return fmt.Errorf("gate #%d Apply(%s): %w", i, g, err)
		}
	}

	return nil
}

// apply dispatches without validation.
func (st *State) apply(g Gate) error {
	switch g.Kind {
	case KindH:
		return st.leftH(g.Q0)
	case KindX:
		st.leftX(g.Q0)
	case KindY:
		st.leftY(g.Q0)
	case KindZ:
		st.leftZ(g.Q0)
	case KindS:
		st.leftS(g.Q0)
	case KindSdg:
		st.leftSdg(g.Q0)
	case KindSqrtX:
		return st.leftSqrtX(g.Q0)
	case KindSqrtXdg:
		return st.leftSqrtXdg(g.Q0)
	case KindCX:
		st.leftCX(g.Q0, g.Q1)
	case KindCZ:
		st.leftCZ(g.Q0, g.Q1)
	case KindSwap:
		st.leftSwap(g.Q0, g.Q1)
	default:
		return ErrInvalidArgument
	}

	return nil
}

// Program is a validated gate list over a fixed register.
type Program struct {
	NumQubits int
	Gates     []Gate
}

// NewProgram returns an empty program on n qubits.
func NewProgram(n int) (*Program, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewProgram(%d): %w", n, ErrInvalidArgument)
	}

	return &Program{NumQubits: n}, nil
}

// Add appends g after validating it against the register.
func (p *Program) Add(g Gate) error {
	if err := g.Validate(p.NumQubits); err != nil {
		return err
	}
	p.Gates = append(p.Gates, g)

	return nil
}

// Validate checks the register size and every gate; all problems are joined.
func (p *Program) Validate() error {
	if p.NumQubits < 1 {
		return fmt.Errorf("program: %d qubits: %w", p.NumQubits, ErrInvalidArgument)
	}
	var errs []error
	for i, g := range p.Gates {
		if err := g.Validate(p.NumQubits); err != nil {
			errs = append(errs, fmt.Errorf("gate #%d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// FromProgram runs p from |0…0⟩.
func FromProgram(p *Program) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	st, err := New(p.NumQubits)
	if err != nil {
		return nil, err
	}
	if err = st.ApplyAll(p.Gates...); err != nil {
		return nil, err
	}

	return st, nil
}
