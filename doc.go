// Package lvnum is a small, self-contained numerical kernel layer:
// BLAS Level-2 matrix-vector kernels and the exponential family of special
// functions with error estimates and extended-range results.
//
// 🚀 What is inside?
//
//	field/    — the Scalar constraint (float32, float64, complex64, complex128)
//	            and the few generic helpers kernels need (Conj, Real, Imag…)
//	extended/ — Number: mantissa × 2^exponent, so e^1000 is representable
//	specfunc/ — exp, y·exp, expm1, exprel, exprel_2, exprel_n with Result
//	            {Val, Err, Status} records and sentinel errors
//	dense/    — zero-copy Vector/Matrix views over caller-owned slices:
//	            strides, negative increments, row/column-major, structure tags
//	level2/   — gemv, ger/geru/gerc, symv/hemv, syr/her, syr2/her2, trmv,
//	            trsv and a MatVec dispatcher driven by the structure tag
//	cmd/lvnum — a command-line front end for quick evaluations
//
// ✨ Guarantees
//
//   - Pure Go, no cgo; flags are the gonum.org/v1/gonum/blas enums.
//   - Preconditions are checked before the first write: on error, caller
//     buffers are untouched.
//   - Overflow never silently becomes +Inf: special functions report
//     StatusOverflow together with ErrOverflow.
//   - Optional row-block parallelism (level2.WithWorkers) gives results
//     bit-identical to the sequential run.
//
// Quick start:
//
//	A, _ := dense.NewMatrix([]float64{1, 2, 3, 4}, 2, 2, 2)
//	y := dense.VectorOf(make([]float64, 2))
//	_ = level2.Gemv(blas.NoTrans, 1, A, dense.VectorOf([]float64{1, 1}), 0, y)
//
//	r, err := specfunc.ExprelNE(3, 0.25)
//	fmt.Println(r.Val, r.Err, err)
package lvnum
