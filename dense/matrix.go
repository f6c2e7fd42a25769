// SPDX-License-Identifier: MIT

// Package dense - strided matrix view with a structure tag.
//
// Purpose:
//   - Describe a caller-owned buffer as an r×c matrix with an explicit
//     leading dimension (stride) in row- or column-major order.
//   - Carry the structure tag (General/Triangular/Symmetric/Hermitian) and
//     its triangle so kernels and readers agree on which elements are live.
//   - Keep the public surface safe: At/Set/Logical return errors, never panic.
//
// AI-Hints:
//   - Hot loops should compute offsets with Index and read Data() directly.
//   - Logical(i,j) applies the structure tag (mirror, conjugate, implicit
//     zero or unit diagonal); At(i,j) reads storage verbatim.
//
// Complexity quicksheet:
//   - NewMatrix: O(1); At/Set/Logical/Index: O(1); View: O(1); String: O(r*c).

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/field"
	"gonum.org/v1/gonum/blas"
)

// ---------- error context tags ----------

const (
	ctxNewMatrix = "NewMatrix"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxLogical   = "Logical"
	ctxView      = "View"
)

// matrixErrorf wraps an error with a uniform Matrix context and indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols view over data.
//   - stride is the leading dimension: distance between consecutive rows
//     (RowMajor) or columns (ColMajor).
//   - kind/uplo/diag describe the structure; storage outside the live
//     triangle of a structured matrix is never read.
type Matrix[T field.Scalar] struct {
	data       []T
	rows, cols int
	stride     int
	order      Order
	kind       Kind
	uplo       blas.Uplo
	diag       blas.Diag
}

var _ fmt.Stringer = Matrix[float64]{}

// NewMatrix validates and returns a matrix view.
// MAIN DESCRIPTION:
//   - Wraps data without copying; the caller keeps ownership.
//
// Implementation:
//   - Stage 1: gather options (order, structure tag).
//   - Stage 2: validate rows, cols ≥ 0 and stride ≥ max(1, minor dimension).
//   - Stage 3: validate that the last addressed element is inside data.
//   - Stage 4: structured kinds must be square.
//
// Errors (all wrap ErrDimensionMismatch):
//   - ErrBadShape, ErrBadLeadingDim, ErrShortBuffer, ErrNonSquare.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewMatrix[T field.Scalar](data []T, rows, cols, stride int, opts ...Option) (Matrix[T], error) {
	o := gatherOptions(opts...)

	if rows < 0 || cols < 0 {
		return Matrix[T]{}, fmt.Errorf("%s(%d,%d): %w", ctxNewMatrix, rows, cols, ErrBadShape)
	}
	major, minor := rows, cols
	if o.order == ColMajor {
		major, minor = cols, rows
	}
	if stride < max(1, minor) {
		return Matrix[T]{}, fmt.Errorf("%s(stride=%d, minor=%d): %w", ctxNewMatrix, stride, minor, ErrBadLeadingDim)
	}
	if rows > 0 && cols > 0 {
		if last := (major-1)*stride + minor - 1; last >= len(data) {
			return Matrix[T]{}, fmt.Errorf("%s(last=%d, len=%d): %w", ctxNewMatrix, last, len(data), ErrShortBuffer)
		}
	}
	if o.kind != General && rows != cols {
		return Matrix[T]{}, fmt.Errorf("%s(%v %dx%d): %w", ctxNewMatrix, o.kind, rows, cols, ErrNonSquare)
	}

	return Matrix[T]{
		data:   data,
		rows:   rows,
		cols:   cols,
		stride: stride,
		order:  o.order,
		kind:   o.kind,
		uplo:   o.uplo,
		diag:   o.diag,
	}, nil
}

// Rows returns the row count.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Stride returns the leading dimension.
func (m Matrix[T]) Stride() int { return m.stride }

// Order returns the storage layout.
func (m Matrix[T]) Order() Order { return m.order }

// Kind returns the structure tag.
func (m Matrix[T]) Kind() Kind { return m.kind }

// Uplo returns the live triangle of a structured matrix.
func (m Matrix[T]) Uplo() blas.Uplo { return m.uplo }

// Diag reports whether a triangular matrix has an implicit unit diagonal.
func (m Matrix[T]) Diag() blas.Diag { return m.diag }

// Data returns the backing slice (shared, not copied).
func (m Matrix[T]) Data() []T { return m.data }

// Index maps (i,j) to its offset in Data(). No bounds check.
func (m Matrix[T]) Index(i, j int) int {
	if m.order == RowMajor {
		return i*m.stride + j
	}

	return j*m.stride + i
}

func (m Matrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the stored element (i,j) regardless of the structure tag.
func (m Matrix[T]) At(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		return field.Zero[T](), matrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[m.Index(i, j)], nil
}

// Set stores v at (i,j) regardless of the structure tag.
func (m Matrix[T]) Set(i, j int, v T) error {
	if !m.inBounds(i, j) {
		return matrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[m.Index(i, j)] = v

	return nil
}

// Logical returns element (i,j) of the matrix the view represents.
// Implementation:
//   - General:    stored value.
//   - Symmetric:  stored value, mirrored from the live triangle.
//   - Hermitian:  as Symmetric but conjugated across the diagonal; the
//     diagonal's imaginary part is dropped.
//   - Triangular: zero outside the live triangle; one on a unit diagonal.
//
// Only the live triangle is read for structured kinds.
func (m Matrix[T]) Logical(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		return field.Zero[T](), matrixErrorf(ctxLogical, i, j, ErrOutOfRange)
	}
	switch m.kind {
	case Symmetric:
		if !InTriangle(m.uplo, i, j) {
			i, j = j, i
		}

		return m.data[m.Index(i, j)], nil
	case Hermitian:
		switch {
		case i == j:
			return field.Real(m.data[m.Index(i, i)]), nil
		case InTriangle(m.uplo, i, j):
			return m.data[m.Index(i, j)], nil
		default:
			return field.Conj(m.data[m.Index(j, i)]), nil
		}
	case Triangular:
		switch {
		case i == j && m.diag == blas.Unit:
			return field.One[T](), nil
		case !InTriangle(m.uplo, i, j):
			return field.Zero[T](), nil
		}

		return m.data[m.Index(i, j)], nil
	default:
		return m.data[m.Index(i, j)], nil
	}
}

// View returns the r×c window starting at (r0,c0) sharing storage with m.
// The window is tagged General.
func (m Matrix[T]) View(r0, c0, r, c int) (Matrix[T], error) {
	if r0 < 0 || c0 < 0 || r < 0 || c < 0 || r0+r > m.rows || c0+c > m.cols {
		return Matrix[T]{}, matrixErrorf(ctxView, r0, c0, ErrOutOfRange)
	}
	out := Matrix[T]{
		rows:   r,
		cols:   c,
		stride: m.stride,
		order:  m.order,
		kind:   General,
		uplo:   DefaultUplo,
		diag:   DefaultDiag,
	}
	if r > 0 && c > 0 {
		out.data = m.data[m.Index(r0, c0):]
	}

	return out, nil
}

// String renders the logical matrix one row per line.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v, _ := m.Logical(i, j)
			fmt.Fprint(&sb, v)
		}
		sb.WriteString(_fmtRowClose)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// InTriangle reports whether (i,j) lies in the uplo triangle, diagonal included.
func InTriangle(uplo blas.Uplo, i, j int) bool {
	if uplo == blas.Upper {
		return i <= j
	}

	return i >= j
}
