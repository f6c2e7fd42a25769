// SPDX-License-Identifier: MIT

package level2

import (
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/field"
	"gonum.org/v1/gonum/blas"
)

// Trmv computes x := op(A)·x in place for triangular A.
// See TrmvOp.
func Trmv[T field.Scalar](uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, a dense.Matrix[T], x dense.Vector[T]) error {
	return TrmvOp(Op{Trans: trans, Uplo: uplo, Diag: diag}, a, x)
}

// TrmvOp computes x := op(A)·x in place, with the triangle, transpose and
// diagonal taken from op.
// Implementation:
//   - op(A) upper: rows ascending, x_i depends only on x_j with j ≥ i.
//   - op(A) lower: rows descending, x_i depends only on x_j with j ≤ i.
//
// A unit diagonal is never read.
//
// Errors:
//   - ErrBadFlag, ErrNonSquare, ErrDimensionMismatch. x is untouched.
//
// Complexity: O(n²).
func TrmvOp[T field.Scalar](op Op, a dense.Matrix[T], x dense.Vector[T]) error {
	n, err := checkTriangular(opTrmv, op, a, x)
	if err != nil {
		return err
	}
	e := transElem(op.Trans, a)
	xd := x.Data()
	unit := op.Diag == blas.Unit

	row := func(i, lo, hi int) {
		xi := xd[x.Index(i)]
		s := xi
		if !unit {
			s = e(i, i) * xi
		}
		for j := lo; j < hi; j++ {
			s += e(i, j) * xd[x.Index(j)]
		}
		xd[x.Index(i)] = s
	}
	if op.effectiveUpper() {
		for i := 0; i < n; i++ {
			row(i, i+1, n)
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			row(i, 0, i)
		}
	}

	return nil
}

// Trsv solves op(A)·x = b in place (x holds b on entry).
// See TrsvOp.
func Trsv[T field.Scalar](uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, a dense.Matrix[T], x dense.Vector[T]) error {
	return TrsvOp(Op{Trans: trans, Uplo: uplo, Diag: diag}, a, x)
}

// TrsvOp solves op(A)·x = b by substitution.
// Implementation:
//   - Stage 1: validate; for a non-unit diagonal scan every pivot first.
//   - Stage 2: op(A) upper → back substitution; lower → forward substitution.
//
// Errors:
//   - ErrSingular (first zero pivot, x untouched), ErrBadFlag, ErrNonSquare,
//     ErrDimensionMismatch.
//
// Complexity: O(n²).
func TrsvOp[T field.Scalar](op Op, a dense.Matrix[T], x dense.Vector[T]) error {
	n, err := checkTriangular(opTrsv, op, a, x)
	if err != nil {
		return err
	}
	unit := op.Diag == blas.Unit
	if !unit {
		ad := a.Data()
		zero := field.Zero[T]()
		for i := 0; i < n; i++ {
			if ad[a.Index(i, i)] == zero {
				return fmt.Errorf("%s: pivot %d: %w", opTrsv, i, ErrSingular)
			}
		}
	}
	e := transElem(op.Trans, a)
	xd := x.Data()

	solve := func(i, lo, hi int) {
		s := xd[x.Index(i)]
		for j := lo; j < hi; j++ {
			s -= e(i, j) * xd[x.Index(j)]
		}
		if !unit {
			s /= e(i, i)
		}
		xd[x.Index(i)] = s
	}
	if op.effectiveUpper() {
		for i := n - 1; i >= 0; i-- {
			solve(i, i+1, n)
		}
	} else {
		for i := 0; i < n; i++ {
			solve(i, 0, i)
		}
	}

	return nil
}

func checkTriangular[T field.Scalar](tag string, op Op, a dense.Matrix[T], x dense.Vector[T]) (int, error) {
	if err := op.Validate(); err != nil {
		return 0, kernelErrorf(tag, err)
	}
	n, err := squareDim(tag, a)
	if err != nil {
		return 0, err
	}
	if x.Len() != n {
		return 0, dimErrorf(tag, "A is %dx%d, len(x)=%d", n, n, x.Len())
	}

	return n, nil
}
