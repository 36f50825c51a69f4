package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chsim/chform"
	"github.com/katalvlaran/chsim/qasm"
	"github.com/katalvlaran/chsim/statevector"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Tableau      bool
	NoAmplitudes bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <file.qasm>",
		Short: "Simulate a circuit and print its state",
		Long: `Simulate an OpenQASM 2.0 Clifford circuit from |0…0⟩.

Prints the non-zero amplitudes when the register is small enough
(max_statevector_qubits) and, with --tableau, the CH-form data.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Tableau, "tableau", false, "print the CH-form tableau")
	cmd.Flags().BoolVar(&opts.NoAmplitudes, "no-amplitudes", false, "skip the amplitude listing")

	return cmd
}

func runRun(root *RootOptions, opts *RunOptions, path string, cmd *cobra.Command) error {
	prog, st, err := simulate(root, path)
	if err != nil {
		return err
	}

	r := root.renderer(cmd.OutOrStdout())
	r.Program(filepath.Base(path), prog)
	if !opts.NoAmplitudes {
		if n, limit := st.NumQubits(), root.cfg.MaxStatevectorQubits; n > limit {
			r.AmplitudesOmitted(n, limit)
		} else {
			sv, err := statevector.FromStateLimit(st, limit)
			if err != nil {
				return classify("materialize", err)
			}
			r.Amplitudes(sv)
		}
	}
	if opts.Tableau {
		r.Tableau(st.Snapshot())
	}

	return nil
}

// simulate parses path and runs it from |0…0⟩.
func simulate(root *RootOptions, path string) (*chform.Program, *chform.State, error) {
	log := root.logger()
	prog, err := qasm.ParseFile(path, qasm.WithLogger(log))
	if err != nil {
		return nil, nil, classify("parse "+path, err)
	}
	log.Debug("program parsed", "file", path, "qubits", prog.NumQubits, "gates", len(prog.Gates))

	st, err := chform.FromProgram(prog)
	if err != nil {
		return nil, nil, classify("simulate "+path, err)
	}

	return prog, st, nil
}
