// SPDX-License-Identifier: MIT
// Package level2: sentinel error set.
// Kernels validate every precondition before the first write, so an error
// return always means the output buffers are untouched. Errors are wrapped
// with the kernel tag ("Gemv: ...") and matched with errors.Is.

package level2

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/dense"
)

var (
	// ErrDimensionMismatch is dense.ErrDimensionMismatch: op(A) does not
	// conform to the vector lengths.
	ErrDimensionMismatch = dense.ErrDimensionMismatch

	// ErrNonSquare is dense.ErrNonSquare: symmetric, hermitian and
	// triangular kernels require n×n matrices.
	ErrNonSquare = dense.ErrNonSquare

	// ErrSingular is returned by Trsv when a non-unit diagonal element is zero.
	ErrSingular = errors.New("level2: singular triangular matrix")

	// ErrNonRealAlpha is returned by Her when alpha has a non-zero imaginary part.
	ErrNonRealAlpha = errors.New("level2: alpha must be real")

	// ErrBadFlag is returned for a transpose, uplo or diag byte outside the
	// values defined by gonum.org/v1/gonum/blas.
	ErrBadFlag = errors.New("level2: unknown operation flag")
)

// kernelErrorf wraps err with the kernel tag.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// dimErrorf reports a shape violation with its detail.
func dimErrorf(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrDimensionMismatch)
}
