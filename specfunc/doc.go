// SPDX-License-Identifier: MIT

// Package specfunc evaluates the exponential family of special functions with
// error estimates and extended-range results.
//
// What is provided?
//
//	exp, y·exp(x), exp with argument error, expm1, exprel, exprel_2 and exprel_n.
//	Every "...E" function returns a Result{Val, Err, Status} and an error;
//	every "...Ext" function returns a ResultExt whose value is an
//	extended.Number (mantissa × 2^exponent) that does not overflow when
//	e^x leaves the float64 range. Plain forms (Exp, Expm1, ...) return the
//	value and the error only.
//
// Accuracy policy:
//
//   - Small arguments (|x| < 1, or |x| < n+1 for exprel_n) are summed as Taylor
//     series, term by term, until |term| ≤ SeriesTolerance·|sum|.
//   - The error estimate is |last term| + (terms+1)·ε·Σ|terms|.
//   - Larger arguments use math.Exp directly, falling back to extended-range
//     arithmetic when e^x alone would overflow.
//
// Errors:
//
//	ErrDomain    — NaN input, n < 1 for exprel_n.
//	ErrOverflow  — result beyond float64 (Val=±Inf, StatusOverflow).
//	ErrUnderflow — result indistinguishable from zero (Val=0, StatusUnderflow).
//
// Usage:
//
//	r, err := specfunc.ExprelNE(3, 0.25)
//	if err != nil {
//	  // errors.Is(err, specfunc.ErrDomain) ...
//	}
//	fmt.Println(r.Val, "+/-", r.Err)
package specfunc
