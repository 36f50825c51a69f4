package statevector

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/chsim/chform"
)

// MaxQubits is the default cap for FromState.
const MaxQubits = 20

// Vector holds 2^NumQubits amplitudes.
type Vector struct {
	NumQubits  int
	Amplitudes []complex128
}

// New returns |0…0⟩.
func New(n int) (*Vector, error) {
	if n < 1 || n > 30 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidArgument)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1

	return &Vector{NumQubits: n, Amplitudes: amps}, nil
}

// FromAmplitudes wraps a copy of amps; len(amps) must be a power of two ≥ 2.
func FromAmplitudes(amps []complex128) (*Vector, error) {
	n := 0
	for 1<<n < len(amps) {
		n++
	}
	if n < 1 || 1<<n != len(amps) {
		return nil, fmt.Errorf("FromAmplitudes: length %d: %w", len(amps), ErrInvalidArgument)
	}

	return &Vector{NumQubits: n, Amplitudes: append([]complex128(nil), amps...)}, nil
}

func (sv *Vector) Clone() *Vector {
	return &Vector{NumQubits: sv.NumQubits, Amplitudes: append([]complex128(nil), sv.Amplitudes...)}
}

// FromState materializes st with limit = MaxQubits.
func FromState(st *chform.State) (*Vector, error) {
	return FromStateLimit(st, MaxQubits)
}

// FromStateLimit evaluates ⟨i|φ⟩ for every basis index i.
// Complexity: O(2^n · n²).
func FromStateLimit(st *chform.State, limit int) (*Vector, error) {
	n := st.NumQubits()
	if n > limit {
		return nil, fmt.Errorf("FromState: %d qubits, limit %d: %w", n, limit, ErrTooManyQubits)
	}
	out := &Vector{NumQubits: n, Amplitudes: make([]complex128, 1<<n)}
	bits := make([]bool, n)
	for idx := range out.Amplitudes {
		for j := 0; j < n; j++ {
			bits[j] = idx>>j&1 == 1
		}
		a, err := st.Amplitude(bits)
		if err != nil {
			return nil, fmt.Errorf("FromState: index %d: %w", idx, err)
		}
		out.Amplitudes[idx] = a
	}

	return out, nil
}

// Norm returns sqrt(Σ|a_i|²).
func (sv *Vector) Norm() float64 {
	var sum float64
	for _, a := range sv.Amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(sum)
}

// InnerProduct returns ⟨a|b⟩ = Σ conj(a_i)·b_i.
func InnerProduct(a, b *Vector) (complex128, error) {
	if a.NumQubits != b.NumQubits {
		return 0, fmt.Errorf("InnerProduct: %d vs %d qubits: %w", a.NumQubits, b.NumQubits, ErrDimensionMismatch)
	}
	var sum complex128
	for i := range a.Amplitudes {
		sum += cmplx.Conj(a.Amplitudes[i]) * b.Amplitudes[i]
	}

	return sum, nil
}

// ApproxEqual reports whether every amplitude differs by at most tol.
func ApproxEqual(a, b *Vector, tol float64) bool {
	if a.NumQubits != b.NumQubits {
		return false
	}
	for i := range a.Amplitudes {
		if cmplx.Abs(a.Amplitudes[i]-b.Amplitudes[i]) > tol {
			return false
		}
	}

	return true
}

// Kron returns a ⊗ b with a on the low qubits: new index = j·2^na + i.
func Kron(a, b *Vector) *Vector {
	out := &Vector{
		NumQubits:  a.NumQubits + b.NumQubits,
		Amplitudes: make([]complex128, len(a.Amplitudes)*len(b.Amplitudes)),
	}
	for j, bj := range b.Amplitudes {
		if bj == 0 {
			continue
		}
		base := j << a.NumQubits
		for i, ai := range a.Amplitudes {
			out.Amplitudes[base+i] = ai * bj
		}
	}

	return out
}

// Permute returns the relabelled vector where new qubit i is old qubit axes[i].
func (sv *Vector) Permute(axes []int) (*Vector, error) {
	n := sv.NumQubits
	if len(axes) != n {
		return nil, fmt.Errorf("Permute: %d axes for %d qubits: %w", len(axes), n, ErrInvalidArgument)
	}
	seen := make([]bool, n)
	for _, a := range axes {
		if a < 0 || a >= n || seen[a] {
			return nil, fmt.Errorf("Permute: axes %v: %w", axes, ErrInvalidArgument)
		}
		seen[a] = true
	}
	out := &Vector{NumQubits: n, Amplitudes: make([]complex128, len(sv.Amplitudes))}
	for oldIdx, amp := range sv.Amplitudes {
		newIdx := 0
		for i, a := range axes {
			newIdx |= (oldIdx >> a & 1) << i
		}
		out.Amplitudes[newIdx] = amp
	}

	return out, nil
}

// Probability returns P(qubit q = 1).
func (sv *Vector) Probability(q int) (float64, error) {
	if q < 0 || q >= sv.NumQubits {
		return 0, fmt.Errorf("Probability(%d): %w", q, ErrInvalidArgument)
	}
	var p float64
	for i, a := range sv.Amplitudes {
		if i>>q&1 == 1 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return p, nil
}

// Project zeroes the amplitudes inconsistent with qubit q = outcome and renormalizes.
func (sv *Vector) Project(q int, outcome bool) error {
	p1, err := sv.Probability(q)
	if err != nil {
		return err
	}
	p := p1
	if !outcome {
		p = 1 - p1
	}
	if p < 1e-12 {
		return fmt.Errorf("Project(%d,%t): %w", q, outcome, ErrZeroProbability)
	}
	scale := complex(1/math.Sqrt(p), 0)
	for i := range sv.Amplitudes {
		if (i>>q&1 == 1) != outcome {
			sv.Amplitudes[i] = 0
		} else {
			sv.Amplitudes[i] *= scale
		}
	}

	return nil
}

// PartialTraceZero drops qubit q, keeping the q = 0 slice. The slice with
// q = 1 must carry no weight.
func (sv *Vector) PartialTraceZero(q int) (*Vector, error) {
	p1, err := sv.Probability(q)
	if err != nil {
		return nil, err
	}
	if p1 > 1e-12 || sv.NumQubits == 1 {
		return nil, fmt.Errorf("PartialTraceZero(%d): %w", q, ErrZeroProbability)
	}
	out := &Vector{NumQubits: sv.NumQubits - 1, Amplitudes: make([]complex128, len(sv.Amplitudes)/2)}
	low := 1<<q - 1
	for j := range out.Amplitudes {
		old := (j&^low)<<1 | j&low
		out.Amplitudes[j] = sv.Amplitudes[old]
	}

	return out, nil
}
