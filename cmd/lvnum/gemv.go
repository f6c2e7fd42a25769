// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/level2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/blas"
)

// transposeValue is a pflag.Value accepting N, T or C.
type transposeValue blas.Transpose

var _ pflag.Value = (*transposeValue)(nil)

func (t *transposeValue) String() string { return string([]byte{byte(*t)}) }

func (t *transposeValue) Set(s string) error {
	switch strings.ToUpper(s) {
	case "N":
		*t = transposeValue(blas.NoTrans)
	case "T":
		*t = transposeValue(blas.Trans)
	case "C":
		*t = transposeValue(blas.ConjTrans)
	default:
		return fmt.Errorf("unknown transpose %q (want N, T or C)", s)
	}
	return nil
}

func (t *transposeValue) Type() string { return "trans" }

type gemvConfig struct {
	rows, cols  int
	a, x, y     []float64
	alpha, beta float64
	trans       transposeValue
	workers     int
}

func defaultGemvConfig() gemvConfig {
	return gemvConfig{alpha: 1, trans: transposeValue(blas.NoTrans), workers: level2.DefaultWorkers}
}

func makeGemvCommand() *cobra.Command {
	config := defaultGemvConfig()
	cmd := &cobra.Command{
		Use:   "gemv --rows <m> --cols <n> --a <row-major values> --x <values> [--y <values>]",
		Short: "Compute y := alpha*op(A)*x + beta*y for a row-major matrix and print y.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			y, err := runGemv(config)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), y)
			return nil
		},
	}
	cmd.Flags().IntVar(&config.rows, "rows", 0, "rows of A")
	cmd.Flags().IntVar(&config.cols, "cols", 0, "columns of A")
	cmd.Flags().Float64SliceVar(&config.a, "a", nil, "elements of A in row-major order")
	cmd.Flags().Float64SliceVar(&config.x, "x", nil, "vector x")
	cmd.Flags().Float64SliceVar(&config.y, "y", nil, "vector y (zeros of the output length when omitted)")
	cmd.Flags().Float64Var(&config.alpha, "alpha", config.alpha, "scale of op(A)*x")
	cmd.Flags().Float64Var(&config.beta, "beta", config.beta, "scale of y")
	cmd.Flags().Var(&config.trans, "trans", "op(A): N, T or C")
	cmd.Flags().IntVar(&config.workers, "workers", config.workers, "goroutines to split output rows across")
	return cmd
}

func runGemv(config gemvConfig) (dense.Vector[float64], error) {
	A, err := dense.NewMatrix(config.a, config.rows, config.cols, max(1, config.cols))
	if err != nil {
		return dense.Vector[float64]{}, err
	}
	trans := blas.Transpose(config.trans)
	ylen := config.rows
	if trans != blas.NoTrans {
		ylen = config.cols
	}
	y := config.y
	if y == nil {
		y = make([]float64, ylen)
	}
	Y := dense.VectorOf(y)
	opts := []level2.Option{level2.WithWorkers(max(1, config.workers))}
	if err := level2.Gemv(trans, config.alpha, A, dense.VectorOf(config.x), config.beta, Y, opts...); err != nil {
		return dense.Vector[float64]{}, err
	}
	return Y, nil
}
