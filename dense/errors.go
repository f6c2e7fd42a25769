// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Every shape, stride and buffer-length violation wraps ErrDimensionMismatch,
// so callers may match either the precise sentinel or the umbrella one with
// errors.Is. Constructors and accessors never panic on user input.

package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible or invalid dimensions.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrBadShape is returned for negative row, column or element counts.
	ErrBadShape = fmt.Errorf("%w: negative shape", ErrDimensionMismatch)

	// ErrBadStride is returned for a zero vector increment.
	ErrBadStride = fmt.Errorf("%w: zero increment", ErrDimensionMismatch)

	// ErrBadLeadingDim is returned when the matrix stride is smaller than
	// max(1, minor dimension).
	ErrBadLeadingDim = fmt.Errorf("%w: leading dimension too small", ErrDimensionMismatch)

	// ErrShortBuffer is returned when the last addressed element lies beyond
	// the end of the backing slice.
	ErrShortBuffer = fmt.Errorf("%w: buffer too short", ErrDimensionMismatch)

	// ErrNonSquare is returned when a structured (triangular, symmetric,
	// hermitian) matrix is not square.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrOutOfRange indicates an element index outside the view.
	ErrOutOfRange = errors.New("dense: index out of range")
)
