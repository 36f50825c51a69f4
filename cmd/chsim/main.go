// Command chsim simulates Clifford circuits in CH-form.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/chsim/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chsim:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
