package level2_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/field"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// impl is the reference BLAS the kernels are checked against.
var impl gonum.Implementation

const tol = 1e-12

func newRand(seed uint64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func randF64(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*r.Float64() - 1
	}
	return out
}

func randC128(r *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(2*r.Float64()-1, 2*r.Float64()-1)
	}
	return out
}

func clone[T any](s []T) []T { return append([]T(nil), s...) }

// vecLen is the buffer length needed for n elements at increment inc.
func vecLen(n, inc int) int {
	if n == 0 {
		return 0
	}
	if inc < 0 {
		inc = -inc
	}
	return 1 + (n-1)*inc
}

func mustMatrix[T field.Scalar](t testing.TB, data []T, rows, cols, ld int, opts ...dense.Option) dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewMatrix(data, rows, cols, ld, opts...)
	require.NoError(t, err)
	return m
}

func mustVector[T field.Scalar](t testing.TB, data []T, n, inc int) dense.Vector[T] {
	t.Helper()
	v, err := dense.NewVector(data, n, inc)
	require.NoError(t, err)
	return v
}

func requireClose(t *testing.T, want, got []float64, msg string) {
	t.Helper()
	require.True(t, floats.EqualApprox(want, got, tol), "%s\nwant %v\ngot  %v", msg, want, got)
}

func requireCloseC(t *testing.T, want, got []complex128, msg string) {
	t.Helper()
	require.Equal(t, len(want), len(got), msg)
	for i := range want {
		ok := scalar.EqualWithinAbsOrRel(real(want[i]), real(got[i]), tol, tol) &&
			scalar.EqualWithinAbsOrRel(imag(want[i]), imag(got[i]), tol, tol)
		require.True(t, ok, "%s [%d]: want %v got %v", msg, i, want[i], got[i])
	}
}
