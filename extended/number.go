// SPDX-License-Identifier: MIT

// Package extended - extended-range scalar (mantissa × 2^exponent).
//
// Purpose:
//   - Carry magnitudes that overflow or underflow float64 (e.g. e^1000) through
//     a computation and defer the range decision to the final collapse.
//   - Keep every operation normalised: a non-zero finite Number has
//     0.5 ≤ |mant| < 1, exactly the math.Frexp convention.
//
// Representation:
//   - value = mant · 2^exp.
//   - Zero is {0, 0}. Non-finite mantissas (±Inf, NaN) are stored with exp=0
//     and propagate through arithmetic like ordinary floats.
//
// Complexity quicksheet:
//   - All operations are O(1) and allocation-free.
package extended

import (
	"fmt"
	"math"
)

// Reduction constants for Exp (Cody–Waite split of ln 2, as in math.Exp).
const (
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10

	// MaxExponent bounds the base-2 exponent Exp will produce; beyond it
	// the result saturates to +Inf or zero.
	MaxExponent = math.MaxInt32

	// float64 collapse limits: mant < 1, so mant·2^1024 is still finite.
	maxFloatExp = 1024

	// alignLimit is the exponent gap beyond which the smaller addend cannot
	// change the larger one's 53-bit mantissa.
	alignLimit = 64
)

// Number is an extended-range real value mant · 2^exp.
// The zero value is a valid 0.
type Number struct {
	mant float64 // 0.5 ≤ |mant| < 1 when finite and non-zero
	exp  int     // base-2 scale
}

// normalize builds a Number from an arbitrary (m, e) pair.
func normalize(m float64, e int) Number {
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Number{mant: m}
	}
	f, k := math.Frexp(m)

	return Number{mant: f, exp: e + k}
}

// Make converts a float64 into normalised extended form.
// Complexity: O(1).
func Make(x float64) Number { return normalize(x, 0) }

// FromParts builds mant·2^exp and renormalises it.
func FromParts(mant float64, exp int) Number { return normalize(mant, exp) }

// Exp returns e^x in extended form.
// Implementation:
//   - Stage 1: k = round(x / ln 2).
//   - Stage 2: r = x − k·ln2 via the hi/lo split, so |r| ≤ ln2/2.
//   - Stage 3: e^x = e^r · 2^k, normalised.
//
// Behavior highlights:
//   - Never overflows for |x| < MaxExponent·ln2; beyond that saturates.
//   - Relative error grows like (1+|x|)·ε because of the reduction.
func Exp(x float64) Number {
	switch {
	case math.IsNaN(x):
		return Number{mant: math.NaN()}
	case x > float64(MaxExponent)*math.Ln2:
		return Number{mant: math.Inf(1)}
	case x < -float64(MaxExponent)*math.Ln2:
		return Number{}
	}
	k := math.Floor(x*math.Log2E + 0.5)
	r := (x - k*ln2Hi) - k*ln2Lo

	return normalize(math.Exp(r), int(k))
}

// Mant returns the normalised mantissa.
func (n Number) Mant() float64 { return n.mant }

// Exp returns the base-2 exponent.
func (n Number) Exp() int { return n.exp }

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool { return n.mant == 0 }

// IsFinite reports whether n is neither infinite nor NaN.
func (n Number) IsFinite() bool { return !math.IsNaN(n.mant) && !math.IsInf(n.mant, 0) }

// Sign returns -1, 0 or +1 (0 for NaN as well).
func (n Number) Sign() int {
	switch {
	case n.mant > 0:
		return 1
	case n.mant < 0:
		return -1
	default:
		return 0
	}
}

// Neg returns −n.
func (n Number) Neg() Number { return Number{mant: -n.mant, exp: n.exp} }

// Abs returns |n|.
func (n Number) Abs() Number { return Number{mant: math.Abs(n.mant), exp: n.exp} }

// Scale returns n · 2^k.
func (n Number) Scale(k int) Number {
	if n.mant == 0 || !n.IsFinite() {
		return n
	}

	return Number{mant: n.mant, exp: n.exp + k}
}

// Mul returns n · m.
func (n Number) Mul(m Number) Number { return normalize(n.mant*m.mant, n.exp+m.exp) }

// MulFloat returns n · f.
func (n Number) MulFloat(f float64) Number { return n.Mul(Make(f)) }

// Quo returns n / m. Division by zero follows float64 semantics (±Inf or NaN).
func (n Number) Quo(m Number) Number { return normalize(n.mant/m.mant, n.exp-m.exp) }

// Add returns n + m.
// Implementation:
//   - Stage 1: short-circuit zeros and non-finite operands.
//   - Stage 2: align the smaller exponent onto the larger one.
//   - Stage 3: add mantissas and renormalise.
//
// Notes:
//   - When the exponents differ by more than alignLimit the smaller operand
//     is below half an ulp of the larger and is dropped.
func (n Number) Add(m Number) Number {
	if n.mant == 0 {
		return m
	}
	if m.mant == 0 {
		return n
	}
	if !n.IsFinite() || !m.IsFinite() {
		return Number{mant: n.mant + m.mant}
	}
	if n.exp < m.exp {
		n, m = m, n
	}
	d := n.exp - m.exp
	if d > alignLimit {
		return n
	}

	return normalize(n.mant+math.Ldexp(m.mant, -d), n.exp)
}

// Sub returns n − m.
func (n Number) Sub(m Number) Number { return n.Add(m.Neg()) }

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int { return n.Sub(m).Sign() }

// Log returns the natural logarithm of |n| (−Inf for zero).
func (n Number) Log() float64 {
	if n.mant == 0 {
		return math.Inf(-1)
	}

	return math.Log(math.Abs(n.mant)) + float64(n.exp)*math.Ln2
}

// Float64 collapses n into a float64.
// Behavior highlights:
//   - Beyond the float64 range: returns ±Inf and ErrOverflow.
//   - Non-zero value rounding to zero: returns ±0 and ErrUnderflow.
//   - Gradual underflow into subnormals is not reported.
//
// Complexity: O(1).
func (n Number) Float64() (float64, error) {
	switch {
	case math.IsNaN(n.mant):
		return n.mant, nil
	case math.IsInf(n.mant, 0):
		return n.mant, ErrOverflow
	case n.mant == 0:
		return n.mant, nil
	case n.exp > maxFloatExp:
		return math.Inf(n.Sign()), ErrOverflow
	}
	v := math.Ldexp(n.mant, n.exp)
	if v == 0 {
		return v, ErrUnderflow
	}

	return v, nil
}

// String renders n as "mant*2^exp".
func (n Number) String() string {
	return fmt.Sprintf("%g*2^%d", n.mant, n.exp)
}
