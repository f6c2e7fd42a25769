package level2_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/level2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
)

func TestDgemv_MatchesReference(t *testing.T) {
	r := newRand(1)
	const alpha, beta = 1.3, -0.7
	for _, dims := range [][2]int{{3, 4}, {5, 2}, {1, 1}, {7, 7}} {
		m, n := dims[0], dims[1]
		lda := n + 2
		for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans} {
			for _, incX := range []int{1, 2, -1} {
				for _, incY := range []int{1, -2} {
					name := fmt.Sprintf("%dx%d/%c/incX=%d/incY=%d", m, n, trans, incX, incY)
					xl, yl := n, m
					if trans != blas.NoTrans {
						xl, yl = m, n
					}
					a := randF64(r, m*lda)
					x := randF64(r, vecLen(xl, incX))
					y := randF64(r, vecLen(yl, incY))

					want := clone(y)
					impl.Dgemv(trans, m, n, alpha, a, lda, x, incX, beta, want, incY)

					A := mustMatrix(t, a, m, n, lda)
					X := mustVector(t, x, xl, incX)
					Y := mustVector(t, y, yl, incY)
					require.NoError(t, level2.Dgemv(trans, alpha, A, X, beta, Y), name)
					requireClose(t, want, y, name)
				}
			}
		}
	}
}

func TestZgemv_MatchesReference(t *testing.T) {
	r := newRand(2)
	alpha, beta := complex(0.5, -1.25), complex(-0.3, 0.8)
	const m, n, lda = 4, 3, 5
	for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
		xl, yl := n, m
		if trans != blas.NoTrans {
			xl, yl = m, n
		}
		a := randC128(r, m*lda)
		x := randC128(r, vecLen(xl, 2))
		y := randC128(r, vecLen(yl, -1))

		want := clone(y)
		impl.Zgemv(trans, m, n, alpha, a, lda, x, 2, beta, want, -1)

		A := mustMatrix(t, a, m, n, lda)
		require.NoError(t, level2.Zgemv(trans, alpha, A, mustVector(t, x, xl, 2), beta, mustVector(t, y, yl, -1)))
		requireCloseC(t, want, y, fmt.Sprintf("%c", trans))
	}
}

func TestSgemv_MatchesReference(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6}
	x := []float32{0.5, -1, 2}
	y := []float32{1, 1}
	want := clone(y)
	impl.Sgemv(blas.NoTrans, 2, 3, 2, a, 3, x, 1, 0.5, want, 1)

	A := mustMatrix(t, a, 2, 3, 3)
	require.NoError(t, level2.Sgemv(blas.NoTrans, 2, A, dense.VectorOf(x), 0.5, dense.VectorOf(y)))
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(y[i]), 1e-5)
	}
}

// A column-major m×n matrix with leading dimension ld is the row-major
// n×m matrix Aᵀ over the same buffer.
func TestGemv_ColMajor(t *testing.T) {
	r := newRand(3)
	const m, n, ld = 4, 3, 6
	a := randF64(r, n*ld)
	x := randF64(r, n)
	y := randF64(r, m)

	want := clone(y)
	impl.Dgemv(blas.Trans, n, m, 2, a, ld, x, 1, 3, want, 1)

	A := mustMatrix(t, a, m, n, ld, dense.WithOrder(dense.ColMajor))
	require.NoError(t, level2.Gemv(blas.NoTrans, 2, A, dense.VectorOf(x), 3, dense.VectorOf(y)))
	requireClose(t, want, y, "colmajor")
}

func TestGemv_Identity(t *testing.T) {
	id := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	x := []float64{1, -2, 4}
	y := []float64{10, 20, 30}
	const alpha, beta = 2.0, 0.5

	require.NoError(t, level2.Gemv(blas.NoTrans, alpha, mustMatrix(t, id, 3, 3, 3), dense.VectorOf(x), beta, dense.VectorOf(y)))
	assert.Equal(t, []float64{7, 6, 23}, y)
}

func TestGemv_DimensionMismatch(t *testing.T) {
	A := mustMatrix(t, make([]float64, 12), 3, 4, 4)
	y := []float64{1, 2, 3}

	err := level2.Gemv(blas.NoTrans, 1, A, dense.VectorOf([]float64{1, 2, 3}), 0, dense.VectorOf(y))
	assert.ErrorIs(t, err, level2.ErrDimensionMismatch)
	assert.Equal(t, []float64{1, 2, 3}, y)

	// transposed: op(A) is 4x3, so x must have 3 elements and y 4
	err = level2.Gemv(blas.Trans, 1, A, dense.VectorOf([]float64{1, 2, 3}), 0, dense.VectorOf(y))
	assert.ErrorIs(t, err, level2.ErrDimensionMismatch)

	err = level2.Gemv(blas.Transpose('X'), 1, A, dense.VectorOf(make([]float64, 4)), 0, dense.VectorOf(y))
	assert.ErrorIs(t, err, level2.ErrBadFlag)
}

func TestGemv_BLASConventions(t *testing.T) {
	A := mustMatrix(t, []float64{1, 2, 3, 4}, 2, 2, 2)

	// beta == 0 overwrites y without reading it
	y := []float64{math.NaN(), math.Inf(1)}
	require.NoError(t, level2.Gemv(blas.NoTrans, 1, A, dense.VectorOf([]float64{1, 1}), 0, dense.VectorOf(y)))
	assert.Equal(t, []float64{3, 7}, y)

	// alpha == 0 does not read A or x
	nanA := mustMatrix(t, []float64{math.NaN(), 0, 0, math.NaN()}, 2, 2, 2)
	y = []float64{1, 2}
	require.NoError(t, level2.Gemv(blas.NoTrans, 0, nanA, dense.VectorOf([]float64{math.NaN(), 1}), 3, dense.VectorOf(y)))
	assert.Equal(t, []float64{3, 6}, y)

	// empty shapes are legal no-ops
	E := mustMatrix(t, []float64(nil), 0, 0, 1)
	require.NoError(t, level2.Gemv(blas.NoTrans, 1, E, dense.VectorOf([]float64{}), 0, dense.VectorOf([]float64{})))
}

func TestGemv_ParallelMatchesSequential(t *testing.T) {
	r := newRand(4)
	const m, n = 67, 45
	a := randC128(r, m*n)
	x := randC128(r, n)
	y0 := randC128(r, m)
	alpha, beta := complex(1.1, 0.2), complex(0.4, -0.9)
	A := mustMatrix(t, a, m, n, n)

	seq := clone(y0)
	require.NoError(t, level2.Gemv(blas.NoTrans, alpha, A, dense.VectorOf(x), beta, dense.VectorOf(seq)))

	for _, w := range []int{2, 3, 8, 100} {
		par := clone(y0)
		err := level2.Gemv(blas.NoTrans, alpha, A, dense.VectorOf(x), beta, dense.VectorOf(par),
			level2.WithWorkers(w), level2.WithParallelThreshold(0))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", w)
	}
}

func TestSymvHemv_MatchesReference(t *testing.T) {
	r := newRand(6)
	const n, lda = 5, 7
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
		a := randF64(r, n*lda)
		x := randF64(r, vecLen(n, -2))
		y := randF64(r, n)
		want := clone(y)
		impl.Dsymv(uplo, n, 0.75, a, lda, x, -2, 1.5, want, 1)
		require.NoError(t, level2.Dsymv(uplo, 0.75, mustMatrix(t, a, n, n, lda), mustVector(t, x, n, -2), 1.5, dense.VectorOf(y)))
		requireClose(t, want, y, fmt.Sprintf("Dsymv %c", uplo))

		ac := randC128(r, n*lda)
		xc := randC128(r, n)
		yc := randC128(r, vecLen(n, 3))
		wantC := clone(yc)
		alpha, beta := complex(0.3, 1.2), complex(-1, 0.25)
		impl.Zhemv(uplo, n, alpha, ac, lda, xc, 1, beta, wantC, 3)
		require.NoError(t, level2.Zhemv(uplo, alpha, mustMatrix(t, ac, n, n, lda), dense.VectorOf(xc), beta, mustVector(t, yc, n, 3)))
		requireCloseC(t, wantC, yc, fmt.Sprintf("Zhemv %c", uplo))
	}
}

func TestSymv_Preconditions(t *testing.T) {
	A := mustMatrix(t, make([]float64, 6), 2, 3, 3)
	err := level2.Symv(blas.Upper, 1.0, A, dense.VectorOf(make([]float64, 3)), 0, dense.VectorOf(make([]float64, 3)))
	assert.ErrorIs(t, err, level2.ErrNonSquare)
	assert.ErrorIs(t, err, level2.ErrDimensionMismatch)

	S := mustMatrix(t, make([]float64, 4), 2, 2, 2)
	err = level2.Symv(blas.Uplo('Z'), 1.0, S, dense.VectorOf(make([]float64, 2)), 0, dense.VectorOf(make([]float64, 2)))
	assert.ErrorIs(t, err, level2.ErrBadFlag)

	err = level2.Hemv(blas.Lower, 1.0, S, dense.VectorOf(make([]float64, 2)), 0, dense.VectorOf(make([]float64, 3)))
	assert.ErrorIs(t, err, level2.ErrDimensionMismatch)
}

// naiveProduct evaluates α·A·x + β·y through dense.Matrix.Logical.
func naiveProduct(t *testing.T, alpha complex128, a dense.Matrix[complex128], x []complex128, beta complex128, y []complex128) []complex128 {
	out := make([]complex128, len(y))
	for i := range out {
		var s complex128
		for j := range x {
			v, err := a.Logical(i, j)
			require.NoError(t, err)
			s += v * x[j]
		}
		out[i] = alpha*s + beta*y[i]
	}
	return out
}

func TestMatVec_DispatchesOnKind(t *testing.T) {
	r := newRand(7)
	const n = 4
	alpha, beta := complex(0.5, 0.5), complex(2, -1)
	kinds := []struct {
		name string
		opt  dense.Option
	}{
		{"general", nil},
		{"symmetric", dense.WithSymmetric(blas.Lower)},
		{"hermitian", dense.WithHermitian(blas.Upper)},
		{"triangular", dense.WithTriangular(blas.Lower, blas.NonUnit)},
		{"unit-triangular", dense.WithTriangular(blas.Upper, blas.Unit)},
	}
	for _, k := range kinds {
		t.Run(k.name, func(t *testing.T) {
			a := randC128(r, n*n)
			x := randC128(r, n)
			y := randC128(r, n)
			A := mustMatrix(t, a, n, n, n, k.opt)
			want := naiveProduct(t, alpha, A, x, beta, y)
			xBefore := clone(x)

			require.NoError(t, level2.MatVec(alpha, A, dense.VectorOf(x), beta, dense.VectorOf(y),
				level2.WithWorkers(2), level2.WithParallelThreshold(0)))
			requireCloseC(t, want, y, k.name)
			assert.Equal(t, xBefore, x)
		})
	}
}
