package statevector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chsim/chform"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// ApplyGate applies g to the amplitudes.
func (sv *Vector) ApplyGate(g chform.Gate) error {
	if err := g.Validate(sv.NumQubits); err != nil {
		return fmt.Errorf("ApplyGate: %v: %w", err, ErrInvalidArgument)
	}
	switch g.Kind {
	case chform.KindH:
		sv.mix(g.Q0, invSqrt2, invSqrt2, invSqrt2, -invSqrt2)
	case chform.KindX:
		sv.mix(g.Q0, 0, 1, 1, 0)
	case chform.KindY:
		sv.mix(g.Q0, 0, -1i, 1i, 0)
	case chform.KindZ:
		sv.phase(g.Q0, -1)
	case chform.KindS:
		sv.phase(g.Q0, 1i)
	case chform.KindSdg:
		sv.phase(g.Q0, -1i)
	case chform.KindSqrtX:
		sv.mix(g.Q0, (1+1i)/2, (1-1i)/2, (1-1i)/2, (1+1i)/2)
	case chform.KindSqrtXdg:
		sv.mix(g.Q0, (1-1i)/2, (1+1i)/2, (1+1i)/2, (1-1i)/2)
	case chform.KindCX:
		sv.applyCX(g.Q0, g.Q1)
	case chform.KindCZ:
		sv.applyCZ(g.Q0, g.Q1)
	case chform.KindSwap:
		sv.applySwap(g.Q0, g.Q1)
	default:
		return fmt.Errorf("ApplyGate: kind %s: %w", g.Kind, ErrInvalidArgument)
	}

	return nil
}

// Run applies every gate of p to |0…0⟩.
func Run(p *chform.Program) (*Vector, error) {
	sv, err := New(p.NumQubits)
	if err != nil {
		return nil, err
	}
	for _, g := range p.Gates {
		if err = sv.ApplyGate(g); err != nil {
			return nil, err
		}
	}

	return sv, nil
}

// mix applies the 2×2 matrix [[a, b], [c, d]] to qubit q.
func (sv *Vector) mix(q int, a, b, c, d complex128) {
	bit := 1 << q
	for i := range sv.Amplitudes {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		x0, x1 := sv.Amplitudes[i], sv.Amplitudes[j]
		sv.Amplitudes[i] = a*x0 + b*x1
		sv.Amplitudes[j] = c*x0 + d*x1
	}
}

// phase multiplies the |1⟩ half of qubit q by f.
func (sv *Vector) phase(q int, f complex128) {
	bit := 1 << q
	for i := range sv.Amplitudes {
		if i&bit != 0 {
			sv.Amplitudes[i] *= f
		}
	}
}

func (sv *Vector) applyCX(c, t int) {
	cb, tb := 1<<c, 1<<t
	for i := range sv.Amplitudes {
		if i&cb != 0 && i&tb == 0 {
			j := i | tb
			sv.Amplitudes[i], sv.Amplitudes[j] = sv.Amplitudes[j], sv.Amplitudes[i]
		}
	}
}

func (sv *Vector) applyCZ(a, b int) {
	ab, bb := 1<<a, 1<<b
	for i := range sv.Amplitudes {
		if i&ab != 0 && i&bb != 0 {
			sv.Amplitudes[i] = -sv.Amplitudes[i]
		}
	}
}

func (sv *Vector) applySwap(a, b int) {
	ab, bb := 1<<a, 1<<b
	for i := range sv.Amplitudes {
		if i&ab != 0 && i&bb == 0 {
			j := i&^ab | bb
			sv.Amplitudes[i], sv.Amplitudes[j] = sv.Amplitudes[j], sv.Amplitudes[i]
		}
	}
}
