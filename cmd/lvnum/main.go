// SPDX-License-Identifier: MIT

// Command lvnum evaluates the exponential special functions and a general
// matrix-vector product from the command line.
//
// Usage:
//
//	lvnum exp --x 1000 --ext
//	lvnum exprel-n --n 3 --x 0.25
//	lvnum gemv --rows 2 --cols 3 --a 1,2,3,4,5,6 --x 1,0,1 --trans N
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvnum/specfunc"
	"github.com/spf13/cobra"
)

func makeLvnumCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "lvnum [command] (flags)",
		Short: "lvnum evaluates exponential special functions and dense matrix-vector products.",
		Long: `lvnum evaluates exponential special functions and dense matrix-vector products.

Special functions print "value ± error [status]"; with --ext the value is
shown as mantissa*2^exponent so results beyond the float64 range stay
readable. The exit status is non-zero whenever the evaluation reports
an error (domain, overflow, underflow, shape mismatch).
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeExpCommand())
	command.AddCommand(makeUnaryCommand("expm1", "e^x - 1, accurate for small x", specfunc.Expm1E))
	command.AddCommand(makeUnaryCommand("exprel", "(e^x - 1)/x", specfunc.ExprelE))
	command.AddCommand(makeUnaryCommand("exprel2", "2(e^x - 1 - x)/x^2", specfunc.Exprel2E))
	command.AddCommand(makeExprelNCommand())
	command.AddCommand(makeExpMultCommand())
	command.AddCommand(makeGemvCommand())

	return command
}

func main() {
	cmd := makeLvnumCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "lvnum: %v\n", err)
		os.Exit(1)
	}
}
