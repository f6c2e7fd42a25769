// SPDX-License-Identifier: MIT

// Package field - the minimal field-operations capability shared by every kernel.
//
// Purpose:
//   - Give generic kernels one element constraint (Scalar) covering
//     float32, float64, complex64 and complex128, and types defined on them.
//   - Expose the handful of operations the language operators do not cover
//     for a real/complex union: conjugate, real part, one, zero.
//
// Notes:
//   - Add/Sub/Mul/Div come from +, -, *, / on the type parameter.
//   - For real T, Conj and Real are the identity and Imag is zero.
//   - The four predeclared types take a type-switch fast path; defined types
//     (type c complex128) are resolved through their reflect.Kind.
package field

import (
	"math/cmplx"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint of every vector, matrix and kernel.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return 1 }

// IsComplex reports whether T is a complex type, defined types included.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	case float32, float64:
		return false
	}

	return isComplexKind(reflect.TypeOf(z).Kind())
}

// Conj returns the complex conjugate of v (identity for real T).
// Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch z := any(v).(type) {
	case complex128:
		return any(cmplx.Conj(z)).(T)
	case complex64:
		return any(complex(real(z), -imag(z))).(T)
	case float32, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	if !isComplexKind(rv.Kind()) {
		return v
	}

	return complexAs[T](cmplx.Conj(rv.Complex()))
}

// Real returns the real part of v as a T (imaginary part cleared).
func Real[T Scalar](v T) T {
	switch z := any(v).(type) {
	case complex128:
		return any(complex(real(z), 0)).(T)
	case complex64:
		return any(complex(real(z), 0)).(T)
	case float32, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	if !isComplexKind(rv.Kind()) {
		return v
	}

	return complexAs[T](complex(real(rv.Complex()), 0))
}

// Imag returns the imaginary part of v widened to float64 (0 for real T).
func Imag[T Scalar](v T) float64 {
	switch z := any(v).(type) {
	case complex128:
		return imag(z)
	case complex64:
		return float64(imag(z))
	case float32, float64:
		return 0
	}
	rv := reflect.ValueOf(v)
	if !isComplexKind(rv.Kind()) {
		return 0
	}

	return imag(rv.Complex())
}

func isComplexKind(k reflect.Kind) bool {
	return k == reflect.Complex64 || k == reflect.Complex128
}

// complexAs stores c into a T whose underlying kind is complex.
func complexAs[T Scalar](c complex128) T {
	var z T
	reflect.ValueOf(&z).Elem().SetComplex(c)

	return z
}
