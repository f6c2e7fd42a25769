// SPDX-License-Identifier: MIT

package specfunc

import (
	"math"

	"github.com/katalvlaran/lvnum/extended"
)

// Operation tags for error wrapping.
const (
	opExp           = "Exp"
	opExpExt        = "ExpExt"
	opExpErr        = "ExpErr"
	opExpErrExt     = "ExpErrExt"
	opExpMult       = "ExpMult"
	opExpMultExt    = "ExpMultExt"
	opExpMultErr    = "ExpMultErr"
	opExpMultErrExt = "ExpMultErrExt"
	opExpm1         = "Expm1"
	opExprel        = "Exprel"
	opExprel2       = "Exprel2"
	opExprelN       = "ExprelN"
)

// ExpE computes e^x with an error estimate.
//
// Errors:
//   - ErrOverflow  for x > LogDblMax.
//   - ErrUnderflow for x < LogDblMin.
//   - ErrDomain    for NaN.
//
// Complexity: O(1).
func ExpE(x float64) (Result, error) {
	switch {
	case math.IsNaN(x):
		return domainE(opExp)
	case x > LogDblMax:
		return overflowE(opExp, 1)
	case x < LogDblMin:
		return underflowE(opExp)
	}
	v := math.Exp(x)

	return Result{Val: v, Err: 2 * DblEpsilon * math.Abs(v)}, nil
}

// Exp computes e^x; see ExpE.
func Exp(x float64) (float64, error) {
	r, err := ExpE(x)

	return r.Val, err
}

// ExpExt computes e^x in extended range, so e^1000 is representable.
// The error estimate grows like (1+|x|)·ε because of argument reduction.
func ExpExt(x float64) (ResultExt, error) {
	switch {
	case math.IsNaN(x):
		return domainExt(opExpExt)
	case x > extLogLimit:
		return overflowExt(opExpExt, 1)
	case x < -extLogLimit:
		return underflowExt(opExpExt)
	}
	n := extended.Exp(x)

	return ResultExt{Val: n, Err: 2 * (1 + math.Abs(x)) * DblEpsilon * math.Abs(n.Mant())}, nil
}

// ExpErrE exponentiates x carrying an absolute argument error dx.
// The propagated error is e^x·max(ε, e^|dx| − e^−|dx|) plus rounding.
func ExpErrE(x, dx float64) (Result, error) {
	adx := math.Abs(dx)
	switch {
	case math.IsNaN(x) || math.IsNaN(dx):
		return domainE(opExpErr)
	case x+adx > LogDblMax:
		return overflowE(opExpErr, 1)
	case x-adx < LogDblMin:
		return underflowE(opExpErr)
	}
	ex := math.Exp(x)
	edx := math.Exp(adx)
	err := ex * math.Max(DblEpsilon, edx-1/edx)
	err += 2 * DblEpsilon * ex

	return Result{Val: ex, Err: err}, nil
}

// ExpErrExt is ExpErrE in extended range.
func ExpErrExt(x, dx float64) (ResultExt, error) {
	adx := math.Abs(dx)
	switch {
	case math.IsNaN(x) || math.IsNaN(dx):
		return domainExt(opExpErrExt)
	case x+adx > extLogLimit:
		return overflowExt(opExpErrExt, 1)
	case x-adx < -extLogLimit:
		return underflowExt(opExpErrExt)
	}
	n := extended.Exp(x)
	am := math.Abs(n.Mant())
	edx := math.Exp(adx)
	err := am * math.Max(DblEpsilon, edx-1/edx)
	err += 2 * (1 + math.Abs(x)) * DblEpsilon * am

	return ResultExt{Val: n, Err: err}, nil
}

// ExpMultE computes y·e^x with an error estimate.
// Implementation:
//   - Stage 1: y == 0 short-circuits to an exact zero.
//   - Stage 2: when both factors are safely inside the float64 range,
//     multiply directly.
//   - Stage 3: otherwise split x and ln|y| into integer and fractional parts
//     so neither partial exponential overflows on its own.
//
// Errors:
//   - ErrOverflow / ErrUnderflow when x + ln|y| leaves the float64 range.
func ExpMultE(x, y float64) (Result, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return domainE(opExpMult)
	}
	ay := math.Abs(y)
	if y == 0 {
		return Result{}, nil
	}
	if x < 0.5*LogDblMax && x > 0.5*LogDblMin && ay < 0.8*SqrtDblMax && ay > 1.2*SqrtDblMin {
		v := y * math.Exp(x)

		return Result{Val: v, Err: (2 + math.Abs(x)) * DblEpsilon * math.Abs(v)}, nil
	}

	ly := math.Log(ay)
	lnr := x + ly
	switch {
	case lnr > LogDblMax-0.01:
		return overflowE(opExpMult, y)
	case lnr < LogDblMin+0.01:
		return underflowE(opExpMult)
	}
	m := math.Floor(x)
	nn := math.Floor(ly)
	a := x - m
	b := ly - nn
	berr := 2 * DblEpsilon * (math.Abs(ly) + math.Abs(nn))
	v := math.Copysign(1, y) * math.Exp(m+nn) * math.Exp(a+b)
	err := berr * math.Abs(v)
	err += 2 * DblEpsilon * math.Abs(m+nn+1) * math.Abs(v)

	return Result{Val: v, Err: err}, nil
}

// ExpMult computes y·e^x; see ExpMultE.
func ExpMult(x, y float64) (float64, error) {
	r, err := ExpMultE(x, y)

	return r.Val, err
}

// ExpMultExt computes y·e^x in extended range.
func ExpMultExt(x, y float64) (ResultExt, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(y, 0) {
		return domainExt(opExpMultExt)
	}
	if y == 0 {
		return ResultExt{}, nil
	}
	ly := math.Log(math.Abs(y))
	switch {
	case x+ly > extLogLimit:
		return overflowExt(opExpMultExt, y)
	case x+ly < -extLogLimit:
		return underflowExt(opExpMultExt)
	}
	n := extended.Exp(x).MulFloat(y)
	err := 2 * (2 + math.Abs(x) + math.Abs(ly)) * DblEpsilon * math.Abs(n.Mant())

	return ResultExt{Val: n, Err: err}, nil
}

// ExpMultErrE computes y·e^x where x and y carry absolute errors dx and dy.
func ExpMultErrE(x, dx, y, dy float64) (Result, error) {
	if math.IsNaN(x) || math.IsNaN(dx) || math.IsNaN(y) || math.IsNaN(dy) {
		return domainE(opExpMultErr)
	}
	ay := math.Abs(y)
	if y == 0 {
		return Result{Val: 0, Err: math.Abs(dy * math.Exp(x))}, nil
	}
	if x < 0.5*LogDblMax && x > 0.5*LogDblMin && ay < 0.8*SqrtDblMax && ay > 1.2*SqrtDblMin {
		ex := math.Exp(x)
		v := y * ex
		err := ex * (math.Abs(dy) + math.Abs(y*dx))
		err += 2 * DblEpsilon * math.Abs(v)

		return Result{Val: v, Err: err}, nil
	}

	ly := math.Log(ay)
	lnr := x + ly
	switch {
	case lnr > LogDblMax-0.01:
		return overflowE(opExpMultErr, y)
	case lnr < LogDblMin+0.01:
		return underflowE(opExpMultErr)
	}
	m := math.Floor(x)
	nn := math.Floor(ly)
	a := x - m
	b := ly - nn
	eMN := math.Exp(m + nn)
	eab := math.Exp(a + b)
	v := math.Copysign(1, y) * eMN * eab
	err := eMN * eab * 2 * DblEpsilon
	err += eMN * eab * math.Abs(dy/y)
	err += eMN * eab * math.Abs(dx)

	return Result{Val: v, Err: err}, nil
}

// ExpMultErrExt is ExpMultErrE in extended range.
// For y == 0 the error e^x·|dy| is returned in float64 and may be +Inf.
func ExpMultErrExt(x, dx, y, dy float64) (ResultExt, error) {
	if math.IsNaN(x) || math.IsNaN(dx) || math.IsNaN(y) || math.IsNaN(dy) || math.IsInf(y, 0) {
		return domainExt(opExpMultErrExt)
	}
	if y == 0 {
		return ResultExt{Err: math.Abs(dy * math.Exp(x))}, nil
	}
	ly := math.Log(math.Abs(y))
	switch {
	case x+ly > extLogLimit:
		return overflowExt(opExpMultErrExt, y)
	case x+ly < -extLogLimit:
		return underflowExt(opExpMultErrExt)
	}
	n := extended.Exp(x).MulFloat(y)
	am := math.Abs(n.Mant())
	err := am * (math.Abs(dy/y) + math.Abs(dx))
	err += 2 * (2 + math.Abs(x) + math.Abs(ly)) * DblEpsilon * am

	return ResultExt{Val: n, Err: err}, nil
}
