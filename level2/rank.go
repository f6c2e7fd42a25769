// SPDX-License-Identifier: MIT

// Package level2 - symmetric and hermitian rank-1/rank-2 updates.
//
// Only the uplo triangle of A (diagonal included) is read or written; the
// other triangle is left byte-for-byte untouched. Hermitian updates leave
// every diagonal element with a zero imaginary part.

package level2

import (
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/field"
	"gonum.org/v1/gonum/blas"
)

func checkSquareUpdate[T field.Scalar](op string, uplo blas.Uplo, a dense.Matrix[T], vs ...dense.Vector[T]) (int, error) {
	if err := checkUplo(uplo); err != nil {
		return 0, kernelErrorf(op, err)
	}
	n, err := squareDim(op, a)
	if err != nil {
		return 0, err
	}
	for _, v := range vs {
		if v.Len() != n {
			return 0, dimErrorf(op, "A is %dx%d, vector length %d", n, n, v.Len())
		}
	}

	return n, nil
}

// triangle calls fn for every (i,j) in the uplo triangle of an n×n matrix,
// row by row.
func triangle(uplo blas.Uplo, n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		lo, hi := 0, i+1
		if uplo == blas.Upper {
			lo, hi = i, n
		}
		for j := lo; j < hi; j++ {
			fn(i, j)
		}
	}
}

// Syr performs A += α·x·xᵀ on the uplo triangle of a symmetric A.
func Syr[T field.Scalar](uplo blas.Uplo, alpha T, x dense.Vector[T], a dense.Matrix[T]) error {
	n, err := checkSquareUpdate(opSyr, uplo, a, x)
	if err != nil {
		return err
	}
	if alpha == field.Zero[T]() {
		return nil
	}
	ad, xd := a.Data(), x.Data()
	triangle(uplo, n, func(i, j int) {
		ad[a.Index(i, j)] += alpha * xd[x.Index(i)] * xd[x.Index(j)]
	})

	return nil
}

// Her performs A += α·x·xᴴ on the uplo triangle of a hermitian A.
// α must be real.
//
// Errors:
//   - ErrNonRealAlpha when imag(α) ≠ 0; ErrBadFlag; ErrDimensionMismatch.
//
// With α == 0 only the diagonal's imaginary parts are cleared; for real T
// that is a no-op and the call returns early.
func Her[T field.Scalar](uplo blas.Uplo, alpha T, x dense.Vector[T], a dense.Matrix[T]) error {
	n, err := checkSquareUpdate(opHer, uplo, a, x)
	if err != nil {
		return err
	}
	if field.Imag(alpha) != 0 {
		return kernelErrorf(opHer, ErrNonRealAlpha)
	}
	herm := field.IsComplex[T]()
	if !herm && alpha == field.Zero[T]() {
		return nil
	}
	ad, xd := a.Data(), x.Data()
	triangle(uplo, n, func(i, j int) {
		k := a.Index(i, j)
		v := ad[k] + alpha*xd[x.Index(i)]*field.Conj(xd[x.Index(j)])
		if herm && i == j {
			v = field.Real(v)
		}
		ad[k] = v
	})

	return nil
}

// Syr2 performs A += α·x·yᵀ + α·y·xᵀ on the uplo triangle.
func Syr2[T field.Scalar](uplo blas.Uplo, alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	n, err := checkSquareUpdate(opSyr2, uplo, a, x, y)
	if err != nil {
		return err
	}
	if alpha == field.Zero[T]() {
		return nil
	}
	ad, xd, yd := a.Data(), x.Data(), y.Data()
	triangle(uplo, n, func(i, j int) {
		xi, xj := xd[x.Index(i)], xd[x.Index(j)]
		yi, yj := yd[y.Index(i)], yd[y.Index(j)]
		ad[a.Index(i, j)] += alpha*xi*yj + alpha*yi*xj
	})

	return nil
}

// Her2 performs A += α·x·yᴴ + conj(α)·y·xᴴ on the uplo triangle.
// With α == 0 only the diagonal's imaginary parts are cleared; for real T
// that is a no-op and the call returns early.
func Her2[T field.Scalar](uplo blas.Uplo, alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	n, err := checkSquareUpdate(opHer2, uplo, a, x, y)
	if err != nil {
		return err
	}
	herm := field.IsComplex[T]()
	if !herm && alpha == field.Zero[T]() {
		return nil
	}
	ca := field.Conj(alpha)
	ad, xd, yd := a.Data(), x.Data(), y.Data()
	triangle(uplo, n, func(i, j int) {
		xi, xj := xd[x.Index(i)], xd[x.Index(j)]
		yi, yj := yd[y.Index(i)], yd[y.Index(j)]
		k := a.Index(i, j)
		v := ad[k] + alpha*xi*field.Conj(yj) + ca*yi*field.Conj(xj)
		if herm && i == j {
			v = field.Real(v)
		}
		ad[k] = v
	})

	return nil
}
