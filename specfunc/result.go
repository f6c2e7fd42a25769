// SPDX-License-Identifier: MIT

// Package specfunc - result records, numeric limits and series policy.
//
// Every evaluation returns a value, a non-negative absolute error estimate
// and a Status. Overflow and underflow produce best-effort records together
// with the matching sentinel error; domain errors produce NaN.

package specfunc

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvnum/extended"
)

// Double-precision limits used by range checks.
const (
	DblEpsilon    = 2.2204460492503131e-16
	DblMin        = 2.2250738585072014e-308
	LogDblMax     = 7.0978271289338397e+02
	LogDblMin     = -7.0839641853226408e+02
	LogDblEpsilon = -3.6043653389117154e+01
	SqrtDblMax    = 1.3407807929942596e+154
	SqrtDblMin    = 1.4916681462400413e-154
)

// Series truncation policy.
const (
	// SeriesTolerance stops summation once |term| ≤ SeriesTolerance·|sum|.
	SeriesTolerance = DblEpsilon

	// MaxSeriesTerms caps the number of terms of a single expansion
	// (ExprelN raises the cap by n).
	MaxSeriesTerms = 200

	// seriesThreshold is the |x| below which expm1, exprel and exprel2
	// are summed as series.
	seriesThreshold = 1.0
)

// extLogLimit is the largest |x| for which e^x has an int32 base-2 exponent.
const extLogLimit = float64(extended.MaxExponent) * math.Ln2

// Result is a float64 value with an absolute error estimate.
type Result struct {
	Val    float64 // best-effort value
	Err    float64 // absolute error estimate, ≥ 0
	Status Status  // outcome classification
}

// ResultExt is an extended-range value with an error estimate.
// Err is expressed in the mantissa scale: absolute error = Err·2^Val.Exp().
type ResultExt struct {
	Val    extended.Number
	Err    float64
	Status Status
}

// Collapse converts r into a float64 Result.
// Implementation:
//   - Stage 1: collapse the value; ErrOverflow/ErrUnderflow propagate.
//   - Stage 2: rescale the error estimate by the same power of two.
//
// Errors:
//   - ErrOverflow  (Val=±Inf, Err=+Inf, StatusOverflow).
//   - ErrUnderflow (Val=0, Err=DblMin, StatusUnderflow).
func (r ResultExt) Collapse() (Result, error) {
	switch r.Status {
	case StatusDomain:
		return Result{Val: math.NaN(), Err: math.NaN(), Status: StatusDomain}, ErrDomain
	case StatusOverflow:
		return Result{Val: math.Copysign(math.Inf(1), r.Val.Mant()), Err: math.Inf(1), Status: StatusOverflow}, ErrOverflow
	case StatusUnderflow:
		return Result{Val: 0, Err: DblMin, Status: StatusUnderflow}, ErrUnderflow
	}
	v, err := r.Val.Float64()
	switch {
	case err == nil:
	case errors.Is(err, ErrOverflow):
		return Result{Val: v, Err: math.Inf(1), Status: StatusOverflow}, ErrOverflow
	case errors.Is(err, ErrUnderflow):
		return Result{Val: 0, Err: DblMin, Status: StatusUnderflow}, ErrUnderflow
	default:
		return Result{}, err
	}

	return Result{Val: v, Err: math.Ldexp(r.Err, r.Val.Exp()), Status: r.Status}, nil
}

// ---------- best-effort records ----------

func overflowE(op string, sign float64) (Result, error) {
	return Result{Val: math.Copysign(math.Inf(1), sign), Err: math.Inf(1), Status: StatusOverflow},
		funcErrorf(op, ErrOverflow)
}

func underflowE(op string) (Result, error) {
	return Result{Val: 0, Err: DblMin, Status: StatusUnderflow}, funcErrorf(op, ErrUnderflow)
}

func domainE(op string) (Result, error) {
	return Result{Val: math.NaN(), Err: math.NaN(), Status: StatusDomain}, funcErrorf(op, ErrDomain)
}

func overflowExt(op string, sign float64) (ResultExt, error) {
	return ResultExt{
		Val:    extended.Make(math.Copysign(math.Inf(1), sign)),
		Err:    math.Inf(1),
		Status: StatusOverflow,
	}, funcErrorf(op, ErrOverflow)
}

func underflowExt(op string) (ResultExt, error) {
	return ResultExt{Err: DblMin, Status: StatusUnderflow}, funcErrorf(op, ErrUnderflow)
}

func domainExt(op string) (ResultExt, error) {
	return ResultExt{Val: extended.Make(math.NaN()), Err: math.NaN(), Status: StatusDomain},
		funcErrorf(op, ErrDomain)
}

// collapseAs collapses r and tags any range error with op.
func collapseAs(op string, r ResultExt) (Result, error) {
	res, err := r.Collapse()
	if err != nil {
		return res, funcErrorf(op, err)
	}

	return res, nil
}
