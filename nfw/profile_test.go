package nfw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func logspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = math.Pow(10, lo+float64(i)*dx)
	}
	return xs
}

func TestGSmallX(t *testing.T) {
	// g(1e-8) from the series x^2/2 - 2x^3/3 + ..., evaluated by hand. The
	// closed form loses every significant digit here.
	ref := 4.999999933333334e-17
	require.InEpsilon(t, ref, G(1e-8), 1e-10)

	// Above the series cutoff the closed form should still agree with the
	// series continuation.
	x := 2e-4
	series := x * x * (1.0/2 + x*(-2.0/3+x*(3.0/4)))
	require.InEpsilon(t, series, G(x), 1e-7)

	require.Equal(t, 0.0, G(0))
}

func TestGLargeX(t *testing.T) {
	// Hand-evaluated g(5) = ln(6) - 5/6.
	require.InEpsilon(t, 0.9584261358947217, G(5), 1e-12)
	require.Less(t, G(5), G(10))
	require.Less(t, G(10), G(25))
}

func TestDimensionlessMassDensityDomain(t *testing.T) {
	bad := [][2]float64{
		{0, 5}, {-1, 5}, {math.NaN(), 5}, {math.Inf(1), 5},
		{0.5, 0}, {0.5, -3}, {0.5, math.NaN()}, {0.5, math.Inf(1)},
	}
	for i, args := range bad {
		_, err := DimensionlessMassDensity(args[0], args[1])
		require.ErrorIsf(t, err, ErrDomain, "case %d: (%g, %g)", i, args[0], args[1])

		_, err = CumulativeMassPDF(args[0], args[1])
		require.ErrorIs(t, err, ErrDomain)

		_, err = DimensionlessCircularVelocity(args[0], args[1])
		require.ErrorIs(t, err, ErrDomain)

		_, err = DimensionlessMassDensityAll([]float64{args[0]}, args[1])
		require.ErrorIs(t, err, ErrDomain)
	}

	_, err := DimensionlessMassDensity(0.5, 5)
	require.NoError(t, err)
}

func TestCumulativeMassPDFMonotonic(t *testing.T) {
	xs := logspace(-2, -0.01, 100)
	for _, conc := range []float64{5, 10, 25} {
		ps, err := CumulativeMassPDFAll(xs, conc)
		require.NoError(t, err)

		for i, p := range ps {
			require.Greaterf(t, p, 0.0, "c = %g, x = %g", conc, xs[i])
			require.Lessf(t, p, 1.0, "c = %g, x = %g", conc, xs[i])
			if i > 0 {
				require.Greaterf(t, p, ps[i-1], "not increasing at x = %g", xs[i])
			}
		}

		p1, err := CumulativeMassPDF(1, conc)
		require.NoError(t, err)
		require.InEpsilon(t, 1.0, p1, 1e-12)
	}
}

// The analytic closed form and the direct shell integral of the density are
// the same function. Neither is allowed to drift from the other.
func TestCumulativeMassPDFMatchesQuadrature(t *testing.T) {
	var analytic AnalyticMassFraction
	numeric := QuadMassFraction{}

	xs := logspace(-2, 0, 50)
	for _, conc := range []float64{5, 10, 25} {
		for _, x := range xs {
			want, err := analytic.MassFraction(x, conc)
			require.NoError(t, err)
			got, err := numeric.MassFraction(x, conc)
			require.NoError(t, err)
			require.InEpsilonf(t, want, got, 1e-4, "c = %g, x = %g", conc, x)
		}
	}

	_, err := numeric.MassFraction(-1, 5)
	require.ErrorIs(t, err, ErrDomain)
}

func TestDimensionlessCircularVelocityShape(t *testing.T) {
	// V~(x) rises to a single peak at x = XMax/c and falls past it.
	for _, conc := range []float64{5, 10, 25} {
		xPeak := XMax / conc
		vPeak, err := DimensionlessCircularVelocity(xPeak, conc)
		require.NoError(t, err)

		for _, x := range []float64{xPeak / 4, xPeak / 2, xPeak * 2, xPeak * 4} {
			v, err := DimensionlessCircularVelocity(x, conc)
			require.NoError(t, err)
			require.Lessf(t, v, vPeak, "c = %g, x = %g", conc, x)
		}
	}
}

// XMax is the root of g(y) = y^2/(1+y)^2; rederive it by bisection so a bad
// constant cannot survive.
func TestVMaxFixedPoint(t *testing.T) {
	f := func(y float64) float64 {
		u := y / (1 + y)
		return G(y) - u*u
	}
	lo, hi := 1.0, 4.0
	require.Less(t, f(lo), 0.0)
	require.Greater(t, f(hi), 0.0)
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	root := (lo + hi) / 2
	require.InDelta(t, XMax, root, 1e-4)
}
