// SPDX-License-Identifier: MIT

// Package level2 - matrix-vector products y := α·op(A)·x + β·y.
//
// Purpose:
//   - One accumulation core (mulRows) shared by the general, symmetric,
//     hermitian and triangular products; each kernel only supplies the
//     element accessor of its effective matrix.
//   - Validate shapes and flags before the first write.
//
// Conventions (reference BLAS):
//   - β == 0: y is overwritten without being read, so NaN in y is ignored.
//   - α == 0: neither A nor x is read.
//   - x and y must not overlap.
//
// Complexity:
//   - Time O(m·n), Space O(1) beyond the optional worker goroutines.

package level2

import (
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/field"
	"gonum.org/v1/gonum/blas"
)

// mulRows computes y_i := α·Σ_j elem(i,j)·x_j + β·y_i for i ∈ [0,m).
// Each y_i is accumulated left to right by a single goroutine.
func mulRows[T field.Scalar](m, n int, elem func(i, j int) T, alpha T, x dense.Vector[T], beta T, y dense.Vector[T], o Options) {
	xd, yd := x.Data(), y.Data()
	zero := field.Zero[T]()
	forRows(o, m, m*n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var acc T
			if alpha != zero {
				for j := 0; j < n; j++ {
					acc += elem(i, j) * xd[x.Index(j)]
				}
				acc *= alpha
			}
			yi := y.Index(i)
			if beta == zero {
				yd[yi] = acc
			} else {
				yd[yi] = acc + beta*yd[yi]
			}
		}
	})
}

// transElem returns the element accessor of op(A).
func transElem[T field.Scalar](trans blas.Transpose, a dense.Matrix[T]) func(i, j int) T {
	ad := a.Data()
	switch trans {
	case blas.NoTrans:
		return func(i, j int) T { return ad[a.Index(i, j)] }
	case blas.Trans:
		return func(i, j int) T { return ad[a.Index(j, i)] }
	default:
		return func(i, j int) T { return field.Conj(ad[a.Index(j, i)]) }
	}
}

// symElem reads the uplo triangle and mirrors it.
func symElem[T field.Scalar](uplo blas.Uplo, a dense.Matrix[T]) func(i, j int) T {
	ad := a.Data()
	return func(i, j int) T {
		if !dense.InTriangle(uplo, i, j) {
			i, j = j, i
		}
		return ad[a.Index(i, j)]
	}
}

// herElem reads the uplo triangle, conjugates across the diagonal and never
// reads the imaginary part of diagonal entries.
func herElem[T field.Scalar](uplo blas.Uplo, a dense.Matrix[T]) func(i, j int) T {
	ad := a.Data()
	return func(i, j int) T {
		switch {
		case i == j:
			return field.Real(ad[a.Index(i, i)])
		case dense.InTriangle(uplo, i, j):
			return ad[a.Index(i, j)]
		default:
			return field.Conj(ad[a.Index(j, i)])
		}
	}
}

// triElem is zero outside the uplo triangle; a unit diagonal is never read.
func triElem[T field.Scalar](uplo blas.Uplo, diag blas.Diag, a dense.Matrix[T]) func(i, j int) T {
	ad := a.Data()
	one, zero := field.One[T](), field.Zero[T]()
	return func(i, j int) T {
		switch {
		case i == j && diag == blas.Unit:
			return one
		case !dense.InTriangle(uplo, i, j):
			return zero
		}
		return ad[a.Index(i, j)]
	}
}

// squareDim returns n for an n×n matrix or ErrNonSquare.
func squareDim[T field.Scalar](op string, a dense.Matrix[T]) (int, error) {
	if a.Rows() != a.Cols() {
		return 0, kernelErrorf(op, ErrNonSquare)
	}

	return a.Rows(), nil
}

// Gemv computes y := α·op(A)·x + β·y where op(A) is A, Aᵀ or Aᴴ.
// MAIN DESCRIPTION:
//   - General matrix-vector product on any Order/stride.
//
// Implementation:
//   - Stage 1: validate trans; op(A) is m×n; require len(x)=n, len(y)=m.
//   - Stage 2: accumulate each y_i over j in ascending order.
//
// Errors:
//   - ErrBadFlag, ErrDimensionMismatch. y is untouched on error.
//
// Complexity:
//   - Time O(m·n), Space O(1).
func Gemv[T field.Scalar](trans blas.Transpose, alpha T, a dense.Matrix[T], x dense.Vector[T], beta T, y dense.Vector[T], opts ...Option) error {
	if err := checkTrans(trans); err != nil {
		return kernelErrorf(opGemv, err)
	}
	m, n := a.Shape()
	if trans != blas.NoTrans {
		m, n = n, m
	}
	if x.Len() != n || y.Len() != m {
		return dimErrorf(opGemv, "op(A) is %dx%d, len(x)=%d, len(y)=%d", m, n, x.Len(), y.Len())
	}
	mulRows(m, n, transElem(trans, a), alpha, x, beta, y, gatherOptions(opts...))

	return nil
}

// Symv computes y := α·A·x + β·y for symmetric A stored in the uplo
// triangle (diagonal included). The other triangle is never read.
func Symv[T field.Scalar](uplo blas.Uplo, alpha T, a dense.Matrix[T], x dense.Vector[T], beta T, y dense.Vector[T], opts ...Option) error {
	n, err := checkSquareProduct(opSymv, uplo, a, x, y)
	if err != nil {
		return err
	}
	mulRows(n, n, symElem(uplo, a), alpha, x, beta, y, gatherOptions(opts...))

	return nil
}

// Hemv computes y := α·A·x + β·y for hermitian A stored in the uplo
// triangle. Imaginary parts of the diagonal are treated as zero.
func Hemv[T field.Scalar](uplo blas.Uplo, alpha T, a dense.Matrix[T], x dense.Vector[T], beta T, y dense.Vector[T], opts ...Option) error {
	n, err := checkSquareProduct(opHemv, uplo, a, x, y)
	if err != nil {
		return err
	}
	mulRows(n, n, herElem(uplo, a), alpha, x, beta, y, gatherOptions(opts...))

	return nil
}

func checkSquareProduct[T field.Scalar](op string, uplo blas.Uplo, a dense.Matrix[T], x, y dense.Vector[T]) (int, error) {
	if err := checkUplo(uplo); err != nil {
		return 0, kernelErrorf(op, err)
	}
	n, err := squareDim(op, a)
	if err != nil {
		return 0, err
	}
	if x.Len() != n || y.Len() != n {
		return 0, dimErrorf(op, "A is %dx%d, len(x)=%d, len(y)=%d", n, n, x.Len(), y.Len())
	}

	return n, nil
}

// MatVec computes y := α·A·x + β·y choosing the kernel from A's structure tag.
// Implementation:
//   - General    → Gemv(NoTrans).
//   - Symmetric  → Symv(A.Uplo()).
//   - Hermitian  → Hemv(A.Uplo()).
//   - Triangular → triangular product written to y; x is not modified
//     (use Trmv for the in-place form).
func MatVec[T field.Scalar](alpha T, a dense.Matrix[T], x dense.Vector[T], beta T, y dense.Vector[T], opts ...Option) error {
	switch a.Kind() {
	case dense.Symmetric:
		return Symv(a.Uplo(), alpha, a, x, beta, y, opts...)
	case dense.Hermitian:
		return Hemv(a.Uplo(), alpha, a, x, beta, y, opts...)
	case dense.Triangular:
		n, err := checkSquareProduct(opMatVec, a.Uplo(), a, x, y)
		if err != nil {
			return err
		}
		mulRows(n, n, triElem(a.Uplo(), a.Diag(), a), alpha, x, beta, y, gatherOptions(opts...))

		return nil
	default:
		return Gemv(blas.NoTrans, alpha, a, x, beta, y, opts...)
	}
}
