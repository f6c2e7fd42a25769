// SPDX-License-Identifier: MIT

package specfunc

import (
	"math"

	"github.com/katalvlaran/lvnum/extended"
)

// Expm1E computes e^x − 1 accurately for small x.
// Implementation:
//   - |x| < 1: Taylor series x + x²/2! + x³/3! + … summed adaptively.
//   - otherwise: direct math.Exp(x) − 1 (no significant cancellation there).
//   - x < ln ε: the result is −1 to working precision.
//
// Errors:
//   - ErrOverflow for x ≥ LogDblMax; ErrDomain for NaN.
func Expm1E(x float64) (Result, error) {
	ax := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return domainE(opExpm1)
	case x == 0:
		return Result{}, nil
	case x < LogDblEpsilon:
		return Result{Val: -1, Err: DblEpsilon}, nil
	case ax < seriesThreshold:
		return sumSeries(x, MaxSeriesTerms, func(k int) float64 {
			return x / float64(k+1)
		}).result(), nil
	case x < LogDblMax:
		ex := math.Exp(x)
		v := ex - 1

		return Result{Val: v, Err: 2 * DblEpsilon * (ex + math.Abs(v))}, nil
	default:
		return overflowE(opExpm1, 1)
	}
}

// Expm1 computes e^x − 1; see Expm1E.
func Expm1(x float64) (float64, error) {
	r, err := Expm1E(x)

	return r.Val, err
}

// ExprelE computes (e^x − 1)/x, the first relative exponential.
// Implementation:
//   - x == 0: exactly 1.
//   - |x| < 1: series 1 + x/2! + x²/3! + … summed adaptively.
//   - x < LogDblMin: −1/x (e^x is below ε·1).
//   - x < LogDblMax: direct evaluation.
//   - larger x: carried through extended range, e^x/x may still fit.
func ExprelE(x float64) (Result, error) {
	ax := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return domainE(opExprel)
	case x == 0:
		return Result{Val: 1}, nil
	case x < LogDblMin:
		v := -1 / x

		return Result{Val: v, Err: DblEpsilon * math.Abs(v)}, nil
	case ax < seriesThreshold:
		return sumSeries(1, MaxSeriesTerms, func(k int) float64 {
			return x / float64(k+1)
		}).result(), nil
	case x < LogDblMax:
		ex := math.Exp(x)
		v := (ex - 1) / x

		return Result{Val: v, Err: 2*DblEpsilon*(ex+1)/ax + DblEpsilon*math.Abs(v)}, nil
	default:
		r, err := exprelExt(x)
		if err != nil {
			return overflowE(opExprel, 1)
		}

		return collapseAs(opExprel, r)
	}
}

// Exprel computes (e^x − 1)/x; see ExprelE.
func Exprel(x float64) (float64, error) {
	r, err := ExprelE(x)

	return r.Val, err
}

// exprelExt computes (e^x − 1)/x in extended range for large positive x.
func exprelExt(x float64) (ResultExt, error) {
	if x > extLogLimit {
		return overflowExt(opExprel, 1)
	}
	n := extended.Exp(x).Sub(extended.Make(1)).Quo(extended.Make(x))

	return ResultExt{Val: n, Err: 2 * (1 + math.Abs(x)) * DblEpsilon * math.Abs(n.Mant())}, nil
}

// Exprel2E computes 2(e^x − 1 − x)/x², the second relative exponential.
// Implementation mirrors ExprelE with the series 1 + x/3 + x²/(3·4) + ….
func Exprel2E(x float64) (Result, error) {
	ax := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return domainE(opExprel2)
	case x == 0:
		return Result{Val: 1}, nil
	case x < LogDblMin:
		v := -2 / x * (1 + 1/x)

		return Result{Val: v, Err: 2 * DblEpsilon * math.Abs(v)}, nil
	case ax < seriesThreshold:
		return sumSeries(1, MaxSeriesTerms, func(k int) float64 {
			return x / float64(k+2)
		}).result(), nil
	case x < LogDblMax:
		ex := math.Exp(x)
		x2 := x * x
		v := 2 * (ex - 1 - x) / x2
		err := 2 * DblEpsilon * (ex + 1 + ax) * 2 / x2
		err += 2 * DblEpsilon * math.Abs(v)

		return Result{Val: v, Err: err}, nil
	case x > extLogLimit:
		return overflowE(opExprel2, 1)
	default:
		n := extended.Exp(x).Sub(extended.Make(1 + x)).Scale(1).Quo(extended.Make(x * x))
		r := ResultExt{Val: n, Err: 2 * (3 + math.Abs(x)) * DblEpsilon * math.Abs(n.Mant())}

		return collapseAs(opExprel2, r)
	}
}

// Exprel2 computes 2(e^x − 1 − x)/x²; see Exprel2E.
func Exprel2(x float64) (float64, error) {
	r, err := Exprel2E(x)

	return r.Val, err
}

// ExprelNE computes the N-relative exponential
//
//	exprel_n(x) = n!/xⁿ · (eˣ − Σ_{k<n} xᵏ/k!) = 1 + x/(n+1) + x²/((n+1)(n+2)) + …
//
// Implementation:
//   - Stage 1: n < 1 or NaN → ErrDomain; x == 0 → exactly 1.
//   - Stage 2: n == 1 and n == 2 delegate to ExprelE / Exprel2E.
//   - Stage 3: |x| < n+1: series, every ratio x/(n+k) is below one.
//   - Stage 4: otherwise the upward recurrence E_k = (k/x)(E_{k-1} − 1),
//     stable because |k/x| < 1, carried in extended range from E_1.
//
// Errors:
//   - ErrDomain (n < 1, NaN), ErrOverflow when the result leaves float64.
//
// Complexity:
//   - Series: O(√n) terms typical, capped at MaxSeriesTerms+n.
//   - Recurrence: O(n).
func ExprelNE(n int, x float64) (Result, error) {
	switch {
	case n < 1 || math.IsNaN(x):
		return domainE(opExprelN)
	case x == 0:
		return Result{Val: 1}, nil
	case n == 1:
		return ExprelE(x)
	case n == 2:
		return Exprel2E(x)
	}

	nf := float64(n)
	if math.Abs(x) < nf+1 {
		return sumSeries(1, MaxSeriesTerms+n, func(k int) float64 {
			return x / (nf + float64(k))
		}).result(), nil
	}

	start, err := exprelStart(x)
	if err != nil {
		return overflowE(opExprelN, 1)
	}
	e := start.Val
	rel := start.Err / math.Abs(e.Mant())
	one := extended.Make(1)
	for k := 2; k <= n; k++ {
		d := e.Sub(one)
		amp, _ := e.Abs().Quo(d.Abs()).Float64()
		rel = rel*amp + 2*DblEpsilon
		e = d.MulFloat(float64(k) / x)
	}

	return collapseAs(opExprelN, ResultExt{Val: e, Err: rel * math.Abs(e.Mant())})
}

// ExprelN computes the N-relative exponential; see ExprelNE.
func ExprelN(n int, x float64) (float64, error) {
	r, err := ExprelNE(n, x)

	return r.Val, err
}

// exprelStart returns E_1(x) in extended form for the recurrence.
func exprelStart(x float64) (ResultExt, error) {
	if x >= LogDblMax {
		return exprelExt(x)
	}
	r, err := ExprelE(x)
	if err != nil {
		return ResultExt{}, err
	}
	v := extended.Make(r.Val)

	return ResultExt{Val: v, Err: math.Ldexp(r.Err, -v.Exp())}, nil
}
