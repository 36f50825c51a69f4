package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chsim/chform"
)

// MeasureOptions holds flags for the measure command.
type MeasureOptions struct {
	Qubits []int
	Seed   int64
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MeasureOptions{}

	cmd := &cobra.Command{
		Use:   "measure <file.qasm>",
		Short: "Measure qubits in the Z basis, one after another",
		Long: `Simulate the circuit, then measure the listed qubits in order.

Without --qubits every qubit is measured. The seed comes from --seed,
then the config file; 0 selects the library default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Qubits, "qubits", nil, "qubits to measure, e.g. 0,2")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed")

	return cmd
}

func runMeasure(root *RootOptions, opts *MeasureOptions, path string, cmd *cobra.Command) error {
	_, st, err := simulate(root, path)
	if err != nil {
		return err
	}

	qubits := opts.Qubits
	if len(qubits) == 0 {
		qubits = make([]int, st.NumQubits())
		for i := range qubits {
			qubits[i] = i
		}
	}
	seed := root.cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = opts.Seed
	}

	rng := chform.NewRand(seed)
	outcomes := make([]bool, len(qubits))
	for i, q := range qubits {
		outcomes[i], err = st.Measure(q, rng)
		if err != nil {
			return classify(fmt.Sprintf("measure q[%d]", q), err)
		}
		root.logger().Debug("measured", "qubit", q, "outcome", outcomes[i])
	}
	root.renderer(cmd.OutOrStdout()).Outcomes(qubits, outcomes)

	return nil
}
