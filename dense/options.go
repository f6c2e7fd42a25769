// SPDX-License-Identifier: MIT

// Package dense: functional configuration for matrix views.
// This file defines:
//   - Order and Kind tags,
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that applies them in order.
//
// The structure tag never changes how storage is addressed; it tells readers
// (Logical, level2.MatVec) which triangle holds the data and how the other
// triangle is implied.
package dense

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Order selects the storage layout of a Matrix.
type Order int

const (
	// RowMajor stores element (i,j) at i*stride + j.
	RowMajor Order = iota
	// ColMajor stores element (i,j) at j*stride + i.
	ColMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Kind is the structure tag of a Matrix.
type Kind int

const (
	// General matrices use every stored element.
	General Kind = iota
	// Triangular matrices use one triangle; the other is implicitly zero.
	Triangular
	// Symmetric matrices use one triangle; the other mirrors it.
	Symmetric
	// Hermitian matrices use one triangle; the other is its conjugate
	// mirror and the diagonal is real.
	Hermitian
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case General:
		return "General"
	case Triangular:
		return "Triangular"
	case Symmetric:
		return "Symmetric"
	case Hermitian:
		return "Hermitian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the storage layout used when WithOrder is absent.
	DefaultOrder = RowMajor

	// DefaultKind is the structure tag used when no structure option is given.
	DefaultKind = General

	// DefaultUplo is the triangle recorded for General matrices.
	DefaultUplo = blas.Upper

	// DefaultDiag is the diagonal kind recorded for non-triangular matrices.
	DefaultDiag = blas.NonUnit
)

// Options holds the view configuration gathered from Option values.
type Options struct {
	order Order
	kind  Kind
	uplo  blas.Uplo
	diag  blas.Diag
}

// Option mutates Options.
type Option func(*Options)

// WithOrder selects the storage layout.
// Panics on an unknown Order (programmer error).
func WithOrder(o Order) Option {
	if o != RowMajor && o != ColMajor {
		panic(fmt.Sprintf("dense: WithOrder(%v): unknown order", o))
	}

	return func(opt *Options) { opt.order = o }
}

// WithSymmetric tags the matrix symmetric with data in the uplo triangle.
func WithSymmetric(uplo blas.Uplo) Option {
	mustUplo("WithSymmetric", uplo)

	return func(opt *Options) {
		opt.kind, opt.uplo, opt.diag = Symmetric, uplo, DefaultDiag
	}
}

// WithHermitian tags the matrix hermitian with data in the uplo triangle.
func WithHermitian(uplo blas.Uplo) Option {
	mustUplo("WithHermitian", uplo)

	return func(opt *Options) {
		opt.kind, opt.uplo, opt.diag = Hermitian, uplo, DefaultDiag
	}
}

// WithTriangular tags the matrix triangular. With blas.Unit the diagonal is
// implicitly one and never read.
func WithTriangular(uplo blas.Uplo, diag blas.Diag) Option {
	mustUplo("WithTriangular", uplo)
	if diag != blas.Unit && diag != blas.NonUnit {
		panic(fmt.Sprintf("dense: WithTriangular: unknown diag %q", byte(diag)))
	}

	return func(opt *Options) {
		opt.kind, opt.uplo, opt.diag = Triangular, uplo, diag
	}
}

func mustUplo(ctor string, uplo blas.Uplo) {
	if uplo != blas.Upper && uplo != blas.Lower {
		panic(fmt.Sprintf("dense: %s: unknown uplo %q", ctor, byte(uplo)))
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder, kind: DefaultKind, uplo: DefaultUplo, diag: DefaultDiag}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
