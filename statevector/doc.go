// Package statevector is a dense reference simulator over 2^n amplitudes.
//
// It mirrors the chform gate set directly on amplitudes and materializes a
// chform.State into its full vector. Index i stores the amplitude of the
// basis state whose bit j is qubit j (little-endian).
//
// It exists for cross-checking and for printing small states; memory grows
// as 2^n, so FromState refuses registers above MaxQubits.
package statevector
