// Package chsim is a CH-form stabilizer state simulator.
//
// Packages:
//
//   - phase: exact eighth-root phases and scalars phase·2^(-r/2).
//   - bitmat: dense boolean matrices with GF(2) rank and inverse.
//   - chform: the CH-form state, Clifford gates, measurement, inner
//     products and structural operations (discard, kron, permute).
//   - statevector: dense reference simulator and CH-form materializer.
//   - qasm: OpenQASM 2.0 Clifford-subset reader and writer.
//   - cmd/chsim: command-line front end (run, inner, measure).
//
// Quick start:
//
//	st, _ := chform.New(2)
//	_ = st.ApplyAll(chform.H(0), chform.CX(0, 1))
//	out, _ := st.Measure(0, chform.NewRand(1))
//
// Qubit j of a basis index i is bit j of i (little-endian) throughout.
package chsim
