// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvnum/specfunc"
	"github.com/spf13/cobra"
)

// scalarConfig holds the flags shared by the special-function commands.
type scalarConfig struct {
	x, y   float64
	dx, dy float64
	n      int
	ext    bool
}

func printResult(w io.Writer, r specfunc.Result) {
	fmt.Fprintf(w, "%.17g ± %.3g [%v]\n", r.Val, r.Err, r.Status)
}

// printResultExt shows the value as mantissa*2^exp and the error in the
// same power of two.
func printResultExt(w io.Writer, r specfunc.ResultExt) {
	fmt.Fprintf(w, "%v ± %.3g*2^%d [%v]\n", r.Val, r.Err, r.Val.Exp(), r.Status)
}

func makeUnaryCommand(name, what string, fn func(float64) (specfunc.Result, error)) *cobra.Command {
	var config scalarConfig
	cmd := &cobra.Command{
		Use:   name + " --x <value>",
		Short: fmt.Sprintf("Evaluate %s with an error estimate.", what),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := fn(config.x)
			printResult(cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().Float64Var(&config.x, "x", 0, "argument")
	return cmd
}

func makeExpCommand() *cobra.Command {
	var config scalarConfig
	cmd := &cobra.Command{
		Use:   "exp --x <value> [--dx <err>] [--ext]",
		Short: "Evaluate e^x, optionally propagating an argument error or in extended range.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			withErr := cmd.Flags().Changed("dx")
			if config.ext {
				var (
					r   specfunc.ResultExt
					err error
				)
				if withErr {
					r, err = specfunc.ExpErrExt(config.x, config.dx)
				} else {
					r, err = specfunc.ExpExt(config.x)
				}
				printResultExt(out, r)
				return err
			}
			var (
				r   specfunc.Result
				err error
			)
			if withErr {
				r, err = specfunc.ExpErrE(config.x, config.dx)
			} else {
				r, err = specfunc.ExpE(config.x)
			}
			printResult(out, r)
			return err
		},
	}
	cmd.Flags().Float64Var(&config.x, "x", 0, "argument")
	cmd.Flags().Float64Var(&config.dx, "dx", 0, "absolute error of x")
	cmd.Flags().BoolVar(&config.ext, "ext", false, "report the value in extended range (mantissa*2^exp)")
	return cmd
}

func makeExpMultCommand() *cobra.Command {
	var config scalarConfig
	cmd := &cobra.Command{
		Use:   "exp-mult --x <value> --y <factor> [--dx <err> --dy <err>] [--ext]",
		Short: "Evaluate y*e^x without intermediate overflow.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			withErr := cmd.Flags().Changed("dx") || cmd.Flags().Changed("dy")
			if config.ext {
				var (
					r   specfunc.ResultExt
					err error
				)
				if withErr {
					r, err = specfunc.ExpMultErrExt(config.x, config.dx, config.y, config.dy)
				} else {
					r, err = specfunc.ExpMultExt(config.x, config.y)
				}
				printResultExt(out, r)
				return err
			}
			var (
				r   specfunc.Result
				err error
			)
			if withErr {
				r, err = specfunc.ExpMultErrE(config.x, config.dx, config.y, config.dy)
			} else {
				r, err = specfunc.ExpMultE(config.x, config.y)
			}
			printResult(out, r)
			return err
		},
	}
	cmd.Flags().Float64Var(&config.x, "x", 0, "exponent")
	cmd.Flags().Float64Var(&config.y, "y", 1, "factor")
	cmd.Flags().Float64Var(&config.dx, "dx", 0, "absolute error of x")
	cmd.Flags().Float64Var(&config.dy, "dy", 0, "absolute error of y")
	cmd.Flags().BoolVar(&config.ext, "ext", false, "report the value in extended range (mantissa*2^exp)")
	return cmd
}

func makeExprelNCommand() *cobra.Command {
	var config scalarConfig
	cmd := &cobra.Command{
		Use:   "exprel-n --n <order> --x <value>",
		Short: "Evaluate the N-relative exponential n!/x^n (e^x - sum_{k<n} x^k/k!).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := specfunc.ExprelNE(config.n, config.x)
			printResult(cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().IntVar(&config.n, "n", 1, "order (n ≥ 1)")
	cmd.Flags().Float64Var(&config.x, "x", 0, "argument")
	return cmd
}
