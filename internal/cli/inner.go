package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chsim/chform"
)

// NewInnerCommand creates the inner command.
func NewInnerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inner <a.qasm> <b.qasm>",
		Short: "Print the overlap ⟨A|B⟩ of two circuits' output states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInner(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runInner(root *RootOptions, pathA, pathB string, cmd *cobra.Command) error {
	_, a, err := simulate(root, pathA)
	if err != nil {
		return err
	}
	_, b, err := simulate(root, pathB)
	if err != nil {
		return err
	}

	v, err := chform.InnerProduct(a, b)
	if err != nil {
		return classify("inner product", err)
	}
	root.renderer(cmd.OutOrStdout()).Inner(v)

	return nil
}
