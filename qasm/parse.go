package qasm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/chsim/chform"
)

const ident = `([a-zA-Z][a-zA-Z0-9_]*)`

// Pre-compiled statement patterns. Statements arrive without the trailing ';'.
var (
	qregRegex  = regexp.MustCompile(`^qreg\s+` + ident + `\s*\[\s*(\d+)\s*\]$`)
	gate1Regex = regexp.MustCompile(`^([a-z_]+)\s+` + ident + `\s*\[\s*(\d+)\s*\]$`)
	gate2Regex = regexp.MustCompile(`^([a-z_]+)\s+` + ident + `\s*\[\s*(\d+)\s*\]\s*,\s*` + ident + `\s*\[\s*(\d+)\s*\]$`)

	headerRegex  = regexp.MustCompile(`^(OPENQASM\s+\d+(\.\d+)?|include\s+"[^"]+")$`)
	ignoredRegex = regexp.MustCompile(`^(measure|creg|barrier)\s+\S`)
)

var singleQubitKinds = map[string]chform.Kind{
	"h":    chform.KindH,
	"x":    chform.KindX,
	"y":    chform.KindY,
	"z":    chform.KindZ,
	"s":    chform.KindS,
	"sdg":  chform.KindSdg,
	"sx":   chform.KindSqrtX,
	"sxdg": chform.KindSqrtXdg,
}

var twoQubitKinds = map[string]chform.Kind{
	"cx":   chform.KindCX,
	"cz":   chform.KindCZ,
	"swap": chform.KindSwap,
}

// Option configures Parse.
type Option func(*parser)

// WithLogger routes parser warnings (ignored measure, creg and barrier statements) to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.log = l
		}
	}
}

// operand is a parsed gate with source position, validated once the register is known.
type operand struct {
	gate chform.Gate
	regs [2]string
	line int
	text string
}

type parser struct {
	log     *slog.Logger
	regName string
	regSize int
	regLine int
	ops     []operand
}

// Parse reads a whole program from r.
func Parse(r io.Reader, opts ...Option) (*chform.Program, error) {
	p := &parser{log: slog.New(slog.NewTextHandler(io.Discard, nil)), regSize: -1}
	for _, o := range opts {
		o(p)
	}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		if err := p.line(lineNum, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("qasm: read: %w", err)
	}

	return p.program()
}

// ParseString parses src.
func ParseString(src string, opts ...Option) (*chform.Program, error) {
	return Parse(strings.NewReader(src), opts...)
}

// ParseFile opens and parses path.
func ParseFile(path string, opts ...Option) (*chform.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qasm: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// line splits one source line into ';'-terminated statements.
func (p *parser) line(num int, raw string) error {
	text := raw
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parts := strings.Split(text, ";")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last != "" {
		return &ParseError{Line: num, Text: last, Err: fmt.Errorf("missing ';': %w", ErrSyntax)}
	}
	for _, part := range parts[:len(parts)-1] {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		if err := p.statement(num, stmt); err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) statement(num int, stmt string) error {
	if headerRegex.MatchString(stmt) {
		return nil
	}
	if m := ignoredRegex.FindStringSubmatch(stmt); m != nil {
		p.log.Warn(m[1]+" statement ignored", "line", num, "stmt", stmt)
		return nil
	}

	if m := qregRegex.FindStringSubmatch(stmt); m != nil {
		if p.regSize >= 0 {
			return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("first declared on line %d: %w", p.regLine, ErrDuplicateRegister)}
		}
		size, err := strconv.Atoi(m[2])
		if err != nil || size < 1 {
			return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("register size %q: %w", m[2], ErrSyntax)}
		}
		p.regName, p.regSize, p.regLine = m[1], size, num

		return nil
	}

	if m := gate2Regex.FindStringSubmatch(stmt); m != nil {
		kind, ok := twoQubitKinds[m[1]]
		if !ok {
			return p.unknownGate(num, stmt, m[1])
		}
		a, errA := strconv.Atoi(m[3])
		b, errB := strconv.Atoi(m[5])
		if errA != nil || errB != nil {
			return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("qubit index: %w", ErrSyntax)}
		}
		p.ops = append(p.ops, operand{
			gate: chform.Gate{Kind: kind, Q0: a, Q1: b},
			regs: [2]string{m[2], m[4]},
			line: num,
			text: stmt,
		})

		return nil
	}

	if m := gate1Regex.FindStringSubmatch(stmt); m != nil {
		kind, ok := singleQubitKinds[m[1]]
		if !ok {
			return p.unknownGate(num, stmt, m[1])
		}
		q, err := strconv.Atoi(m[3])
		if err != nil {
			return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("qubit index: %w", ErrSyntax)}
		}
		p.ops = append(p.ops, operand{
			gate: chform.Gate{Kind: kind, Q0: q},
			regs: [2]string{m[2], m[2]},
			line: num,
			text: stmt,
		})

		return nil
	}

	return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("unrecognized statement: %w", ErrSyntax)}
}

func (p *parser) unknownGate(num int, stmt, name string) error {
	return &ParseError{Line: num, Text: stmt, Err: fmt.Errorf("unsupported gate %q: %w", name, ErrSyntax)}
}

// program validates every collected gate against the register.
func (p *parser) program() (*chform.Program, error) {
	if p.regSize < 0 {
		return nil, &ParseError{Err: ErrMissingRegister}
	}
	prog, err := chform.NewProgram(p.regSize)
	if err != nil {
		return nil, &ParseError{Line: p.regLine, Err: fmt.Errorf("%v: %w", err, ErrSyntax)}
	}

	for _, op := range p.ops {
		for _, reg := range op.regs {
			if reg != p.regName {
				return nil, &ParseError{Line: op.line, Text: op.text, Err: fmt.Errorf("%q (declared %q): %w", reg, p.regName, ErrUnknownRegister)}
			}
		}
		for _, q := range op.gate.Qubits() {
			if q >= p.regSize {
				return nil, &ParseError{Line: op.line, Text: op.text, Err: fmt.Errorf("%s[%d] of size %d: %w", p.regName, q, p.regSize, ErrQubitOutOfRange)}
			}
		}
		if op.gate.Kind.Arity() == 2 && op.gate.Q0 == op.gate.Q1 {
			return nil, &ParseError{Line: op.line, Text: op.text, Err: ErrDuplicateOperand}
		}
		prog.Gates = append(prog.Gates, op.gate)
	}

	return prog, nil
}

// Write emits p as OpenQASM 2.0 that Parse accepts.
func Write(w io.Writer, p *chform.Program) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[%d];\n", p.NumQubits)
	for _, g := range p.Gates {
		fmt.Fprintf(bw, "%s;\n", g)
	}

	return bw.Flush()
}
