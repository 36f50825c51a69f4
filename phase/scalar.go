package phase

import (
	"fmt"
	"math"
)

// Scalar is an exact amplitude: zero, or Phase·2^(-R/2) with R >= 0.
// Use Zero and NewScalar to build values; the zero value of Scalar is Zero.
type Scalar struct {
	nonZero bool
	Phase   Factor
	R       int
}

// Zero is the additive zero.
var Zero = Scalar{}

// Unit is the multiplicative identity 1·2^0.
var Unit = Scalar{nonZero: true}

// NewScalar returns phase·2^(-r/2). Negative r is clamped to zero.
func NewScalar(p Factor, r int) Scalar {
	if r < 0 {
		r = 0
	}

	return Scalar{nonZero: true, Phase: p, R: r}
}

// IsZero reports whether s is Zero.
func (s Scalar) IsZero() bool { return !s.nonZero }

// Mul returns s·t. Anything times Zero is Zero.
func (s Scalar) Mul(t Scalar) Scalar {
	if !s.nonZero || !t.nonZero {
		return Zero
	}

	return Scalar{nonZero: true, Phase: s.Phase.Mul(t.Phase), R: s.R + t.R}
}

// MulPhase returns s·p.
func (s Scalar) MulPhase(p Factor) Scalar {
	if !s.nonZero {
		return Zero
	}

	return Scalar{nonZero: true, Phase: s.Phase.Mul(p), R: s.R}
}

// Conj returns the complex conjugate of s.
func (s Scalar) Conj() Scalar {
	if !s.nonZero {
		return Zero
	}

	return Scalar{nonZero: true, Phase: s.Phase.Conj(), R: s.R}
}

// Complex converts s to complex128. This is the only place where the exact
// representation is rounded.
func (s Scalar) Complex() complex128 {
	if !s.nonZero {
		return 0
	}
	norm := math.Pow(2, -float64(s.R)/2)

	return s.Phase.Complex() * complex(norm, 0)
}

// String renders s, e.g. "0" or "+i·2^(-3/2)".
func (s Scalar) String() string {
	if !s.nonZero {
		return "0"
	}
	if s.R == 0 {
		return s.Phase.String()
	}

	return fmt.Sprintf("%s·2^(-%d/2)", s.Phase, s.R)
}
