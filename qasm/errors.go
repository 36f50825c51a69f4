package qasm

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for unrecognized or malformed statements.
	ErrSyntax = errors.New("qasm: syntax error")

	// ErrDuplicateRegister is returned for a second qreg declaration.
	ErrDuplicateRegister = errors.New("qasm: multiple qreg declarations")

	// ErrMissingRegister is returned when no qreg is declared.
	ErrMissingRegister = errors.New("qasm: qreg declaration not found")

	// ErrUnknownRegister is returned when an operand names another register.
	ErrUnknownRegister = errors.New("qasm: unknown register")

	// ErrQubitOutOfRange is returned for an operand index ≥ register size.
	ErrQubitOutOfRange = errors.New("qasm: qubit index out of range")

	// ErrDuplicateOperand is returned when a two-qubit gate names one qubit twice.
	ErrDuplicateOperand = errors.New("qasm: repeated operand")
)

// ParseError locates a failure in the source text.
type ParseError struct {
	Line int    // 1-based; 0 when the error concerns the whole input
	Text string // offending statement, trimmed
	Err  error  // one of the sentinels above, possibly wrapped
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
