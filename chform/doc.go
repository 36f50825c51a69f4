// Package chform simulates n-qubit stabilizer states in CH-form.
//
// A state is stored as
//
//	|φ⟩ = ω · pf · U_C · U_H · |s⟩
//
// where U_C is a Clifford that fixes |0…0⟩, tracked by its tableau
// (boolean matrices G, F, M and the phase vector γ), U_H applies H to every
// qubit flagged in v, s is a basis string, pf is a discrete phase in
// {1, i, -1, -i} and ω is a free unit-modulus complex number.
//
// What:
//
//   - New, Clone, Validate, Snapshot: construction and inspection.
//   - Apply / ApplyAll / FromProgram: the closed Clifford gate set
//     {H, X, Y, Z, S, Sdg, √X, √X†, CX, CZ, Swap}.
//   - QubitState, Project, Measure: Z-basis measurement.
//   - InnerProduct and Normalizer: ⟨A|B⟩ in O(n³) without amplitudes.
//   - Discard, Kron, Permute: structural operations.
//   - AmplitudeAtZero, AmplitudeAt: exact basis amplitudes.
//
// Complexity:
//
//   - Z, S, Sdg, X, Y, CX, CZ: O(n). H, √X, √X†, Project: O(n²).
//   - Swap, Permute, Kron: O(n²). InnerProduct: O(n³). Discard: O(n²).
//
// Determinism:
//
//   - Every routine is a single deterministic pass. The only random choice
//     is the outcome drawn by Measure from a caller-supplied *rand.Rand.
//
// Errors:
//
//   - ErrInvalidArgument, ErrInvalidState, ErrMeasurementInconsistent,
//     ErrOperationInfeasible, ErrDimensionMismatch (see errors.go).
//
// See arXiv:1808.00128 (Bravyi et al.) for the CH-form update rules.
package chform
