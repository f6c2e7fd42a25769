package specfunc_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvnum/extended"
	"github.com/katalvlaran/lvnum/specfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const relTol = 1e-14

// TestExpm1_MatchesExactDifference compares against math.Expm1, which
// computes e^x − 1 without cancellation.
func TestExpm1_MatchesExactDifference(t *testing.T) {
	xs := []float64{1e-8, -1e-8, 1e-5, 1e-3, -0.3, 0.5, 0.999, -0.999, 1, -1, 5, -30, 700}
	for _, x := range xs {
		r, err := specfunc.Expm1E(x)
		require.NoError(t, err, "x=%g", x)
		want := math.Expm1(x)
		assert.True(t, scalar.EqualWithinRel(want, r.Val, relTol), "x=%g want %.17g got %.17g", x, want, r.Val)
		assert.GreaterOrEqual(t, r.Err, 0.0)
	}

	v, err := specfunc.Expm1(-50)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	v, err = specfunc.Expm1(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = specfunc.Expm1(710)
	assert.ErrorIs(t, err, specfunc.ErrOverflow)
	_, err = specfunc.Expm1(math.NaN())
	assert.ErrorIs(t, err, specfunc.ErrDomain)
}

func TestExprel(t *testing.T) {
	for _, x := range []float64{-20, -1.5, -0.7, 1e-3, 0.3, 0.99, 1.5, 30, 700} {
		v, err := specfunc.Exprel(x)
		require.NoError(t, err, "x=%g", x)
		want := math.Expm1(x) / x
		assert.True(t, scalar.EqualWithinRel(want, v, relTol), "x=%g want %.17g got %.17g", x, want, v)
	}

	v, err := specfunc.Exprel(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = specfunc.Exprel(-800)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0/800, v, relTol)

	// e^710 overflows but e^710/710 does not.
	v, err = specfunc.Exprel(710)
	require.NoError(t, err)
	assert.InDelta(t, 710-math.Log(710), math.Log(v), 1e-10)

	r, err := specfunc.ExprelE(800)
	assert.ErrorIs(t, err, specfunc.ErrOverflow)
	assert.Equal(t, specfunc.StatusOverflow, r.Status)
}

// TestExprel_SmallArgument checks exprel(x) ≈ 1 + x/2 near zero. Below 1e-8
// the quadratic term is under ε and the bound is the reported error alone;
// above it the omitted x²/6 is added to the bound.
func TestExprel_SmallArgument(t *testing.T) {
	for _, x := range []float64{3e-9, -1e-10, 5e-9, -9e-9} {
		r, err := specfunc.ExprelE(x)
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(r.Val-(1+x/2)), r.Err, "x=%g", x)
	}
	for _, x := range []float64{1e-7, -5e-7, 9e-7} {
		r, err := specfunc.ExprelE(x)
		require.NoError(t, err)
		bound := r.Err + x*x/6*(1+math.Abs(x))
		assert.LessOrEqual(t, math.Abs(r.Val-(1+x/2)), bound, "x=%g", x)
	}
}

func TestExprel2(t *testing.T) {
	for _, x := range []float64{-30, -2, -0.5, 0.5, 0.9, 2, 30} {
		v, err := specfunc.Exprel2(x)
		require.NoError(t, err, "x=%g", x)
		want := 2 * (math.Expm1(x) - x) / (x * x)
		assert.True(t, scalar.EqualWithinRel(want, v, relTol), "x=%g want %.17g got %.17g", x, want, v)
	}

	const x = 1e-6
	v, err := specfunc.Exprel2(x)
	require.NoError(t, err)
	assert.InDelta(t, 1+x/3+x*x/12, v, 1e-15)

	v, err = specfunc.Exprel2(720)
	require.NoError(t, err)
	assert.InDelta(t, 720+math.Ln2-2*math.Log(720), math.Log(v), 1e-10)

	_, err = specfunc.Exprel2(800)
	assert.ErrorIs(t, err, specfunc.ErrOverflow)
}

func TestExprelN_Delegation(t *testing.T) {
	for _, x := range []float64{-40, -3, -0.25, 1e-9, 0.5, 4, 100, 710} {
		e1, err1 := specfunc.ExprelNE(1, x)
		r1, errR1 := specfunc.ExprelE(x)
		assert.Equal(t, errR1 == nil, err1 == nil)
		assert.Equal(t, r1, e1, "n=1 x=%g", x)

		e2, err2 := specfunc.ExprelNE(2, x)
		r2, errR2 := specfunc.Exprel2E(x)
		assert.Equal(t, errR2 == nil, err2 == nil)
		assert.Equal(t, r2, e2, "n=2 x=%g", x)
	}
}

func TestExprelN_Edges(t *testing.T) {
	r, err := specfunc.ExprelNE(0, 1)
	assert.ErrorIs(t, err, specfunc.ErrDomain)
	assert.Equal(t, specfunc.StatusDomain, r.Status)
	assert.True(t, math.IsNaN(r.Val))

	_, err = specfunc.ExprelN(-3, 1)
	assert.ErrorIs(t, err, specfunc.ErrDomain)
	_, err = specfunc.ExprelN(4, math.NaN())
	assert.ErrorIs(t, err, specfunc.ErrDomain)

	for _, n := range []int{1, 2, 5, 60} {
		v, err := specfunc.ExprelN(n, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v, "n=%d", n)
	}
}

// closedForm3 is 6/x³·(eˣ − 1 − x − x²/2).
func closedForm3(x float64) float64 {
	return 6 / (x * x * x) * (math.Expm1(x) - x - x*x/2)
}

func TestExprelN_Values(t *testing.T) {
	// series branch (|x| < 4) and recurrence branch (|x| ≥ 4)
	for _, x := range []float64{2.5, -3.5, 5, -7, 12, -1000} {
		v, err := specfunc.ExprelN(3, x)
		require.NoError(t, err, "x=%g", x)
		want := closedForm3(x)
		assert.True(t, scalar.EqualWithinRel(want, v, 1e-12), "x=%g want %.17g got %.17g", x, want, v)
	}

	v, err := specfunc.ExprelN(4, 6)
	require.NoError(t, err)
	want := 24.0 / 1296 * (math.Exp(6) - 1 - 6 - 18 - 36)
	assert.InEpsilon(t, want, v, 1e-12)

	// e^720 overflows; 6·e^720/720³ does not.
	v, err = specfunc.ExprelN(3, 720)
	require.NoError(t, err)
	assert.InDelta(t, 720+math.Log(6)-3*math.Log(720), math.Log(v), 1e-9)
}

// TestExprelN_Recurrence checks E_n = (n/x)(E_{n−1} − 1) across both branches.
func TestExprelN_Recurrence(t *testing.T) {
	cases := []struct {
		n int
		x float64
	}{
		{5, 3}, {5, -3}, {8, 20}, {8, -20}, {30, 29.5}, {30, 45},
	}
	for _, c := range cases {
		prev, err := specfunc.ExprelN(c.n-1, c.x)
		require.NoError(t, err)
		cur, err := specfunc.ExprelN(c.n, c.x)
		require.NoError(t, err)
		want := float64(c.n) / c.x * (prev - 1)
		assert.True(t, scalar.EqualWithinRel(want, cur, 1e-12), "n=%d x=%g want %.17g got %.17g", c.n, c.x, want, cur)
	}
}

func TestErrorEstimatesNonNegative(t *testing.T) {
	fns := map[string]func(float64) (specfunc.Result, error){
		"exp":     specfunc.ExpE,
		"expm1":   specfunc.Expm1E,
		"exprel":  specfunc.ExprelE,
		"exprel2": specfunc.Exprel2E,
		"exprel7": func(x float64) (specfunc.Result, error) { return specfunc.ExprelNE(7, x) },
	}
	xs := []float64{-700, -50, -5, -1, -0.5, -1e-12, 0, 1e-12, 0.5, 1, 5, 50, 700}
	for name, f := range fns {
		for _, x := range xs {
			r, err := f(x)
			if err != nil {
				continue
			}
			assert.GreaterOrEqual(t, r.Err, 0.0, "%s(%g)", name, x)
			assert.False(t, math.IsNaN(r.Val), "%s(%g)", name, x)
		}
	}
}

func TestCollapse(t *testing.T) {
	r, err := specfunc.ResultExt{Val: extended.Make(3), Err: 1}.Collapse()
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Val)
	assert.Equal(t, 4.0, r.Err) // 3 = 0.75·2², error scaled by 2²

	_, err = specfunc.ResultExt{Val: extended.FromParts(0.5, 5000)}.Collapse()
	assert.ErrorIs(t, err, specfunc.ErrOverflow)

	r, err = specfunc.ResultExt{Val: extended.FromParts(0.5, -5000)}.Collapse()
	assert.ErrorIs(t, err, specfunc.ErrUnderflow)
	assert.Equal(t, specfunc.StatusUnderflow, r.Status)

	_, err = specfunc.ResultExt{Status: specfunc.StatusDomain}.Collapse()
	assert.ErrorIs(t, err, specfunc.ErrDomain)
}

// exprelNSeries sums n!/(n+k)!·x^k in 256-bit arithmetic.
func exprelNSeries(n int, x float64) float64 {
	const prec = 256
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	tiny := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -200)
	for k := 1; k < 20000; k++ {
		term.Mul(term, bx)
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n+k)))
		sum.Add(sum, term)
		bound := new(big.Float).SetPrec(prec).Mul(tiny, new(big.Float).Abs(sum))
		if new(big.Float).Abs(term).Cmp(bound) <= 0 {
			break
		}
	}
	v, _ := sum.Float64()

	return v
}

// TestExprelN_ErrorBoundsSeries checks |Val − exact| ≤ Err on long series,
// where many terms accumulate rounding.
func TestExprelN_ErrorBoundsSeries(t *testing.T) {
	cases := []struct {
		n int
		x float64
	}{
		{3, 3.9}, {10, -10.5}, {50, 49}, {50, -49}, {200, 150}, {500, 500.5},
	}
	for _, c := range cases {
		r, err := specfunc.ExprelNE(c.n, c.x)
		require.NoError(t, err, "n=%d x=%g", c.n, c.x)
		want := exprelNSeries(c.n, c.x)
		assert.LessOrEqual(t, math.Abs(r.Val-want), r.Err, "n=%d x=%g want %.17g got %.17g err %g", c.n, c.x, want, r.Val, r.Err)
	}
}
