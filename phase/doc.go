// Package phase implements exact arithmetic on discrete phases and on the
// amplitudes of stabilizer states.
//
// What:
//
//   - Factor: an eighth root of unity e^{ikπ/4}, stored as k mod 8.
//     Multiplication adds exponents, Conj negates them, Flipped adds 4.
//   - Scalar: either Zero or phase·2^(-R/2). Products stay exact.
//
// Floating point appears only in Complex(), the single exit to complex128.
// Both types are small values, safe to copy and compare with ==.
package phase
