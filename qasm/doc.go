// Package qasm reads the Clifford subset of OpenQASM 2.0 into a chform.Program.
//
// Accepted statements:
//
//	OPENQASM 2.0;  include "qelib1.inc";   headers, skipped
//	qreg q[N];                              exactly one quantum register
//	measure q[i] -> c[i];                   skipped with a warning
//	creg c[N];  barrier q;                  skipped with a warning
//	h x y z s sdg sx sxdg q[i];             single-qubit gates
//	cx cz swap q[i], q[j];                  two-qubit gates
//
// Comments start with "//" and run to the end of the line. Several
// statements may share a line. Every failure is a *ParseError carrying the
// line number and wrapping one of the sentinels in errors.go.
package qasm
