// Package chform: sentinel error set.
// Routines return these sentinels wrapped with call-site context
// (fmt.Errorf("Op(args): %w", ErrX)); callers match with errors.Is.
// No routine panics on user input.

package chform

import "errors"

var (
	// ErrInvalidArgument covers bad qubit counts or indices, duplicate indices,
	// malformed permutations and non-unit global phases. Checked before any mutation.
	ErrInvalidArgument = errors.New("chform: invalid argument")

	// ErrInvalidState signals a broken internal invariant (singular G, an
	// impossible superposition). It is not recoverable by the caller.
	ErrInvalidState = errors.New("chform: invalid state")

	// ErrMeasurementInconsistent is returned when a projection asks for the
	// opposite value of a determined qubit.
	ErrMeasurementInconsistent = errors.New("chform: projection conflicts with determined qubit")

	// ErrOperationInfeasible is returned when discard preconditions do not hold.
	ErrOperationInfeasible = errors.New("chform: operation infeasible")

	// ErrDimensionMismatch is returned when two states have different qubit counts.
	ErrDimensionMismatch = errors.New("chform: dimension mismatch")
)
