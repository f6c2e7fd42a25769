// SPDX-License-Identifier: MIT

package level2

import (
	"github.com/katalvlaran/lvnum/dense"
	"github.com/katalvlaran/lvnum/field"
)

// Ger performs the rank-1 update A += α·x·yᵀ on an m×n matrix.
//
// Errors:
//   - ErrDimensionMismatch unless len(x)=m and len(y)=n. A is untouched.
//
// Complexity: O(m·n).
func Ger[T field.Scalar](alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	return rank1(opGer, false, alpha, x, y, a)
}

// Geru is Ger under its complex BLAS name (no conjugation).
func Geru[T field.Scalar](alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	return rank1(opGeru, false, alpha, x, y, a)
}

// Gerc performs A += α·x·yᴴ. For real T it equals Ger.
func Gerc[T field.Scalar](alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	return rank1(opGerc, true, alpha, x, y, a)
}

func rank1[T field.Scalar](op string, conj bool, alpha T, x, y dense.Vector[T], a dense.Matrix[T]) error {
	m, n := a.Shape()
	if x.Len() != m || y.Len() != n {
		return dimErrorf(op, "A is %dx%d, len(x)=%d, len(y)=%d", m, n, x.Len(), y.Len())
	}
	if alpha == field.Zero[T]() {
		return nil
	}
	ad, xd, yd := a.Data(), x.Data(), y.Data()
	for i := 0; i < m; i++ {
		ax := alpha * xd[x.Index(i)]
		for j := 0; j < n; j++ {
			yj := yd[y.Index(j)]
			if conj {
				yj = field.Conj(yj)
			}
			ad[a.Index(i, j)] += ax * yj
		}
	}

	return nil
}
