// Package render prints simulation results as plain text or lipgloss boxes.
package render

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chsim/bitmat"
	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/phase"
	"github.com/katalvlaran/chsim/statevector"
)

// Lipgloss styles for the pretty format.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	ketStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// Renderer writes sections to an io.Writer.
type Renderer struct {
	w         io.Writer
	pretty    bool
	precision int
	tolerance float64
}

// New returns a renderer; pretty selects lipgloss boxes.
func New(w io.Writer, pretty bool, precision int, tolerance float64) *Renderer {
	return &Renderer{w: w, pretty: pretty, precision: precision, tolerance: tolerance}
}

// section prints a titled block of lines.
func (r *Renderer) section(title string, lines []string) {
	if r.pretty {
		fmt.Fprintln(r.w, titleStyle.Render(title))
		fmt.Fprintln(r.w, boxStyle.Render(strings.Join(lines, "\n")))
		return
	}
	fmt.Fprintf(r.w, "%s:\n", title)
	for _, l := range lines {
		fmt.Fprintf(r.w, "  %s\n", l)
	}
}

// Program prints the register size and gate count.
func (r *Renderer) Program(name string, p *chform.Program) {
	r.section("program", []string{
		"source: " + name,
		fmt.Sprintf("qubits: %d", p.NumQubits),
		fmt.Sprintf("gates:  %d", len(p.Gates)),
	})
}

// Amplitudes lists non-negligible amplitudes, most significant qubit first.
func (r *Renderer) Amplitudes(sv *statevector.Vector) {
	n := sv.NumQubits
	var lines []string
	for idx, a := range sv.Amplitudes {
		if cmplx.Abs(a) <= r.tolerance {
			continue
		}
		ket := fmt.Sprintf("|%s⟩", basisLabel(idx, n))
		if r.pretty {
			ket = ketStyle.Render(ket)
		}
		p := real(a)*real(a) + imag(a)*imag(a)
		lines = append(lines, fmt.Sprintf("%s  %s  p=%.*f", ket, r.complex(a), r.precision, p))
	}
	r.section(fmt.Sprintf("amplitudes (q%d..q0)", n-1), lines)
}

// AmplitudesOmitted notes that the register is too large to list.
func (r *Renderer) AmplitudesOmitted(n, limit int) {
	line := fmt.Sprintf("omitted: %d qubits exceeds limit %d", n, limit)
	if r.pretty {
		line = dimStyle.Render(line)
	}
	r.section("amplitudes", []string{line})
}

// Tableau dumps the CH-form data.
func (r *Renderer) Tableau(s chform.Snapshot) {
	var lines []string
	for _, m := range []struct {
		name string
		d    *bitmat.Dense
	}{{"G", s.G}, {"F", s.F}, {"M", s.M}} {
		lines = append(lines, m.name+":")
		for _, row := range strings.Split(strings.TrimSuffix(m.d.String(), "\n"), "\n") {
			lines = append(lines, "  "+row)
		}
	}
	gamma := make([]string, len(s.Gamma))
	for i, g := range s.Gamma {
		gamma[i] = g.String()
	}
	lines = append(lines,
		"gamma: "+strings.Join(gamma, " "),
		"v: "+bits(s.V),
		"s: "+bits(s.S),
		"omega: "+r.complex(s.Omega),
		"pf: "+s.PhaseFactor.String(),
	)
	r.section("tableau", lines)
}

// Inner prints an overlap with its magnitude.
func (r *Renderer) Inner(v complex128) {
	r.section("inner product", []string{
		"⟨A|B⟩ = " + r.complex(v),
		fmt.Sprintf("|⟨A|B⟩| = %.*f", r.precision, r.clean(cmplx.Abs(v))),
	})
}

// Outcomes prints one line per measured qubit.
func (r *Renderer) Outcomes(qubits []int, outcomes []bool) {
	lines := make([]string, len(qubits))
	for i, q := range qubits {
		v := 0
		if outcomes[i] {
			v = 1
		}
		lines[i] = fmt.Sprintf("q[%d] = %d", q, v)
	}
	r.section("measurements", lines)
}

// Exact prints an exact amplitude such as ⟨0…0|φ⟩.
func (r *Renderer) Exact(label string, s phase.Scalar) {
	r.section("exact", []string{label + " = " + s.String()})
}

func (r *Renderer) complex(c complex128) string {
	return fmt.Sprintf("%+.*f%+.*fi", r.precision, r.clean(real(c)), r.precision, r.clean(imag(c)))
}

// clean maps values within tolerance of zero (including -0) to +0.
func (r *Renderer) clean(x float64) float64 {
	if math.Abs(x) <= r.tolerance {
		return 0
	}

	return x
}

func basisLabel(idx, n int) string {
	var b strings.Builder
	for q := n - 1; q >= 0; q-- {
		if idx>>q&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

func bits(v []bool) string {
	var b strings.Builder
	for _, x := range v {
		if x {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
