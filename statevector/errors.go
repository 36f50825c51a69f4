package statevector

import "errors"

var (
	// ErrTooManyQubits is returned when 2^n amplitudes would exceed the configured cap.
	ErrTooManyQubits = errors.New("statevector: too many qubits")

	// ErrInvalidArgument covers bad qubit indices, permutations and gate kinds.
	ErrInvalidArgument = errors.New("statevector: invalid argument")

	// ErrDimensionMismatch is returned when two vectors differ in qubit count.
	ErrDimensionMismatch = errors.New("statevector: dimension mismatch")

	// ErrZeroProbability is returned when a projection or trace finds no weight.
	ErrZeroProbability = errors.New("statevector: zero-probability outcome")
)
