// SPDX-License-Identifier: MIT

// Package dense - strided vector view over a caller-owned slice.
//
// Addressing follows the BLAS convention:
//   - inc > 0: element k lives at k*inc.
//   - inc < 0: element k lives at (n-1-k)*|inc|, so element 0 is the last
//     addressed slot and the vector is traversed backwards.
//
// Complexity quicksheet:
//   - NewVector: O(1); At/Set/Index: O(1); ToSlice: O(n).

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/field"
)

// ---------- error context tags ----------

const (
	ctxNewVector = "NewVector"
	ctxVecAt     = "Vector.At"
	ctxVecSet    = "Vector.Set"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// Vector is a strided view of n elements. It does not own data; writes
// through Set or through level2 kernels mutate the caller's slice.
type Vector[T field.Scalar] struct {
	data []T
	n    int
	inc  int
}

var _ fmt.Stringer = Vector[float64]{}

// NewVector validates and returns a view of n elements with increment inc.
//
// Errors:
//   - ErrBadShape (n < 0), ErrBadStride (inc == 0),
//     ErrShortBuffer ((n-1)*|inc| ≥ len(data)).
//
// All wrap ErrDimensionMismatch.
func NewVector[T field.Scalar](data []T, n, inc int) (Vector[T], error) {
	switch {
	case n < 0:
		return Vector[T]{}, fmt.Errorf("%s(n=%d): %w", ctxNewVector, n, ErrBadShape)
	case inc == 0:
		return Vector[T]{}, fmt.Errorf("%s(inc=0): %w", ctxNewVector, ErrBadStride)
	case n > 0 && (n-1)*absInt(inc) >= len(data):
		return Vector[T]{}, fmt.Errorf("%s(n=%d, inc=%d, len=%d): %w", ctxNewVector, n, inc, len(data), ErrShortBuffer)
	}

	return Vector[T]{data: data, n: n, inc: inc}, nil
}

// VectorOf wraps a whole slice as a contiguous vector.
func VectorOf[T field.Scalar](data []T) Vector[T] {
	return Vector[T]{data: data, n: len(data), inc: 1}
}

// Len returns the logical element count.
func (v Vector[T]) Len() int { return v.n }

// Inc returns the increment.
func (v Vector[T]) Inc() int { return v.inc }

// Data returns the backing slice (shared, not copied).
func (v Vector[T]) Data() []T { return v.data }

// Index maps logical position k to its offset in Data(). No bounds check.
func (v Vector[T]) Index(k int) int {
	if v.inc > 0 {
		return k * v.inc
	}

	return (v.n - 1 - k) * -v.inc
}

// At returns element k or ErrOutOfRange.
func (v Vector[T]) At(k int) (T, error) {
	if k < 0 || k >= v.n {
		return field.Zero[T](), fmt.Errorf("%s(%d): %w", ctxVecAt, k, ErrOutOfRange)
	}

	return v.data[v.Index(k)], nil
}

// Set stores x at position k or returns ErrOutOfRange.
func (v Vector[T]) Set(k int, x T) error {
	if k < 0 || k >= v.n {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, k, ErrOutOfRange)
	}
	v.data[v.Index(k)] = x

	return nil
}

// ToSlice copies the logical elements into a new contiguous slice.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, v.n)
	for k := range out {
		out[k] = v.data[v.Index(k)]
	}

	return out
}

// String renders the logical elements as "[a, b, c]".
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for k := 0; k < v.n; k++ {
		if k > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v.data[v.Index(k)])
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}

	return a
}
