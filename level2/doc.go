// SPDX-License-Identifier: MIT

// Package level2 implements the BLAS Level-2 matrix-vector kernels over
// dense.Matrix and dense.Vector views, generic over float32, float64,
// complex64 and complex128.
//
// What is provided?
//
//	Gemv        y := α·op(A)·x + β·y            op ∈ {A, Aᵀ, Aᴴ}
//	Ger/Geru    A += α·x·yᵀ
//	Gerc        A += α·x·yᴴ
//	Symv/Hemv   y := α·A·x + β·y                A symmetric / hermitian
//	Syr/Her     A += α·x·xᵀ / α·x·xᴴ            α real for Her
//	Syr2/Her2   A += α·x·yᵀ + α·y·xᵀ / α·x·yᴴ + ᾱ·y·xᴴ
//	Trmv        x := op(A)·x                     A triangular
//	Trsv        x := op(A)⁻¹·x                   A triangular
//	MatVec      y := α·A·x + β·y                 kernel chosen by A.Kind()
//
// Flags are the gonum.org/v1/gonum/blas enums (blas.NoTrans, blas.Upper,
// blas.Unit, ...). Precision-specific names (Dgemv, Zher2, Strsv, ...) are
// provided as instantiated function values.
//
// Guarantees:
//   - All preconditions are checked before the first write; on error the
//     output buffers are untouched.
//   - Structured kernels read and write only the designated triangle.
//   - Gemv/Symv/Hemv/MatVec accept WithWorkers/WithParallelThreshold and
//     then split output rows across goroutines; results are bit-identical
//     to the sequential run.
//
// Errors:
//
//	ErrDimensionMismatch, ErrNonSquare, ErrBadFlag, ErrSingular, ErrNonRealAlpha.
package level2
