// SPDX-License-Identifier: MIT

// Package dense provides zero-copy vector and matrix views over caller-owned
// slices for the float32, float64, complex64 and complex128 element types.
//
// Views:
//
//	Vector[T]: n elements at increment inc (inc ≠ 0; negative inc walks the
//	           buffer backwards, BLAS style).
//	Matrix[T]: rows×cols with a leading dimension (stride), RowMajor or
//	           ColMajor, and a structure tag: General, Triangular, Symmetric
//	           or Hermitian with its live triangle (blas.Upper/blas.Lower)
//	           and, for Triangular, blas.Unit/blas.NonUnit diagonal.
//
// Constructors validate shape, stride and buffer length up front, so kernels
// built on these views (package level2) can index Data() without checks.
// Every shape error wraps ErrDimensionMismatch.
//
// Usage:
//
//	buf := []float64{4, 1, 0, 3}
//	A, err := dense.NewMatrix(buf, 2, 2, 2, dense.WithTriangular(blas.Upper, blas.NonUnit))
//	if err != nil {
//	  // errors.Is(err, dense.ErrDimensionMismatch)
//	}
//	v, _ := A.Logical(1, 0) // 0: below the live triangle
package dense
