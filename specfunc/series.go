// SPDX-License-Identifier: MIT

package specfunc

import "math"

// seriesSum is the outcome of one adaptive Taylor summation.
type seriesSum struct {
	sum    float64 // accumulated value
	absSum float64 // Σ|t_k|, scales the rounding bound
	last   float64 // last included term
	terms  int     // number of included terms
}

// sumSeries adds t0 + t1 + … where t_k = t_{k-1}·ratio(k).
// Implementation:
//   - Stage 1: start from t0.
//   - Stage 2: add terms until |t_k| ≤ SeriesTolerance·|sum| or maxTerms is hit.
//
// Behavior highlights:
//   - The terminating term is included.
//   - Deterministic: fixed order, no allocation.
//
// Complexity: O(terms).
func sumSeries(t0 float64, maxTerms int, ratio func(k int) float64) seriesSum {
	s := seriesSum{sum: t0, absSum: math.Abs(t0), last: t0, terms: 1}
	t := t0
	for k := 1; k < maxTerms; k++ {
		t *= ratio(k)
		s.sum += t
		s.absSum += math.Abs(t)
		s.last = t
		s.terms++
		if math.Abs(t) <= SeriesTolerance*math.Abs(s.sum) {
			break
		}
	}

	return s
}

// err is the truncation proxy |last term| plus a rounding bound. Every
// included term carries one rounding from its ratio product and one from the
// running sum, so the bound grows with the term count.
func (s seriesSum) err() float64 {
	return math.Abs(s.last) + float64(s.terms+1)*DblEpsilon*s.absSum
}

// result packages the sum as a successful Result.
func (s seriesSum) result() Result {
	return Result{Val: s.sum, Err: s.err()}
}
