package phase

import (
	"fmt"
	"math"
)

// Factor is the phase e^{ikπ/4} with k in [0,8).
// The zero value is One.
type Factor uint8

// The eight phases of the group, in exponent order.
const (
	One      Factor = iota // e^{0}
	ExpIPi4                // e^{iπ/4}
	I                      // e^{iπ/2}
	Exp3IPi4               // e^{3iπ/4}
	MinusOne               // e^{iπ}
	Exp5IPi4               // e^{5iπ/4}
	MinusI                 // e^{3iπ/2}
	Exp7IPi4               // e^{7iπ/4}
)

const order = 8

// FromInt returns the phase with exponent k mod 8. Negative k wraps.
func FromInt(k int) Factor {
	k %= order
	if k < 0 {
		k += order
	}

	return Factor(k)
}

// Int returns the exponent k in [0,8).
func (p Factor) Int() int { return int(p % order) }

// Mul returns p·q.
func (p Factor) Mul(q Factor) Factor { return Factor((p + q) % order) }

// Conj returns the complex conjugate (inverse) of p.
func (p Factor) Conj() Factor { return Factor((order - p%order) % order) }

// Flipped returns -p.
func (p Factor) Flipped() Factor { return p.Mul(MinusOne) }

// IsQuarter reports whether p is one of 1, i, -1, -i.
func (p Factor) IsQuarter() bool { return p%2 == 0 }

// Complex converts p to complex128. Quarter phases are returned exactly.
func (p Factor) Complex() complex128 {
	switch p % order {
	case One:
		return 1
	case I:
		return 1i
	case MinusOne:
		return -1
	case MinusI:
		return -1i
	}
	angle := float64(p%order) * math.Pi / 4

	return complex(math.Cos(angle), math.Sin(angle))
}

// String renders p in a compact human form, e.g. "+1", "-i", "e^{3iπ/4}".
func (p Factor) String() string {
	switch p % order {
	case One:
		return "+1"
	case I:
		return "+i"
	case MinusOne:
		return "-1"
	case MinusI:
		return "-i"
	case ExpIPi4:
		return "e^{iπ/4}"
	}

	return fmt.Sprintf("e^{%diπ/4}", int(p%order))
}
