// SPDX-License-Identifier: MIT

package level2

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// Kernel tags for error wrapping.
const (
	opGemv   = "Gemv"
	opGer    = "Ger"
	opGeru   = "Geru"
	opGerc   = "Gerc"
	opSymv   = "Symv"
	opHemv   = "Hemv"
	opMatVec = "MatVec"
	opSyr    = "Syr"
	opHer    = "Her"
	opSyr2   = "Syr2"
	opHer2   = "Her2"
	opTrmv   = "Trmv"
	opTrsv   = "Trsv"
)

// Op describes how a kernel interprets its matrix operand:
// op(A) ∈ {A, Aᵀ, Aᴴ}, the live triangle, and whether the diagonal is an
// implicit unit. Kernels that do not use a field ignore it.
type Op struct {
	Trans blas.Transpose
	Uplo  blas.Uplo
	Diag  blas.Diag
}

// Validate rejects flag bytes outside the gonum/blas enums with ErrBadFlag.
func (o Op) Validate() error {
	if err := checkTrans(o.Trans); err != nil {
		return err
	}
	if err := checkUplo(o.Uplo); err != nil {
		return err
	}

	return checkDiag(o.Diag)
}

// String renders the descriptor as its three flag letters, e.g. "NUN".
func (o Op) String() string {
	return fmt.Sprintf("%c%c%c", byte(o.Trans), byte(o.Uplo), byte(o.Diag))
}

// effectiveUpper reports whether op(A) is upper triangular.
func (o Op) effectiveUpper() bool {
	return (o.Uplo == blas.Upper) == (o.Trans == blas.NoTrans)
}

func checkTrans(t blas.Transpose) error {
	switch t {
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
		return nil
	}

	return fmt.Errorf("trans %q: %w", byte(t), ErrBadFlag)
}

func checkUplo(u blas.Uplo) error {
	switch u {
	case blas.Upper, blas.Lower:
		return nil
	}

	return fmt.Errorf("uplo %q: %w", byte(u), ErrBadFlag)
}

func checkDiag(d blas.Diag) error {
	switch d {
	case blas.NonUnit, blas.Unit:
		return nil
	}

	return fmt.Errorf("diag %q: %w", byte(d), ErrBadFlag)
}
