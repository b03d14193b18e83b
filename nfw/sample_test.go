package nfw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSampleIdempotent(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)

	a, err := s.Sample(0.5, 10, 1000, 43)
	require.NoError(t, err)
	b, err := s.Sample(0.5, 10, 1000, 43)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// A fresh sampler with the same configuration reproduces the stream too.
	c, err := GenerateRadialPositions(0.5, 10, 1000, 43)
	require.NoError(t, err)
	require.Equal(t, a, c)
}

func TestSampleSeedsDiffer(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)

	a, err := s.Sample(0.5, 10, 1000, 43)
	require.NoError(t, err)
	b, err := s.Sample(0.5, 10, 1000, 44)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSampleRange(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)
	rs, err := s.Sample(0.5, 5, 10000, 1)
	require.NoError(t, err)
	for i, r := range rs {
		require.Greaterf(t, r, 0.0, "position %d", i)
		require.LessOrEqualf(t, r, 0.5, "position %d", i)
	}
}

func TestSampleDomainErrors(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)

	_, err = s.Sample(0, 10, 100, 43)
	require.ErrorIs(t, err, ErrDomain)
	_, err = s.Sample(0.5, -1, 100, 43)
	require.ErrorIs(t, err, ErrDomain)
	_, err = s.Sample(0.5, 10, 0, 43)
	require.ErrorIs(t, err, ErrDomain)
	_, err = s.Sample(0.5, math.NaN(), 100, 43)
	require.ErrorIs(t, err, ErrDomain)
}

func TestGridValidation(t *testing.T) {
	cases := []struct {
		name string
		opts []SamplerOption
	}{
		{"too few points", []SamplerOption{Grid([]float64{0.1, 0.5, 1})}},
		{"too few default points", []SamplerOption{GridSize(2)}},
		{"not increasing", []SamplerOption{Grid([]float64{0.1, 0.3, 0.2, 1})}},
		{"repeated point", []SamplerOption{Grid([]float64{0.1, 0.3, 0.3, 1})}},
		{"non-positive point", []SamplerOption{Grid([]float64{0, 0.3, 0.5, 1})}},
		{"point beyond halo radius", []SamplerOption{Grid([]float64{0.1, 0.5, 1, 2})}},
	}

	for _, c := range cases {
		_, err := NewRadialSampler(c.opts...)
		require.ErrorIsf(t, err, ErrGrid, "%s", c.name)
	}

	// A valid custom grid works end to end.
	grid := make([]float64, 200)
	floats.LogSpan(grid, 1e-3, 1)
	s, err := NewRadialSampler(Grid(grid))
	require.NoError(t, err)
	_, err = s.Sample(1, 10, 100, 7)
	require.NoError(t, err)
}

// A structurally valid but sparse grid has to be rejected rather than
// silently sampled from: four points over three decades leave the inverse
// interpolant tens of percent off the analytic CDF.
func TestCoarseCustomGrid(t *testing.T) {
	s, err := NewRadialSampler(Grid([]float64{0.001, 0.01, 0.3, 1}))
	require.NoError(t, err)

	for _, conc := range []float64{5, 10, 25} {
		_, err = s.Sample(0.5, conc, 100, 43)
		require.ErrorIsf(t, err, ErrGrid, "c = %g", conc)
	}

	// A rejected table is not cached, so a repeat draw fails the same way.
	_, err = s.Sample(0.5, 10, 100, 43)
	require.ErrorIs(t, err, ErrGrid)
}

// The inverse interpolant has to reproduce the analytic CDF to better than
// a part in a thousand everywhere the table covers.
func TestInverseCDFAccuracy(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)

	for _, conc := range []float64{5, 10, 25} {
		tab, err := s.table(conc)
		require.NoError(t, err)

		for _, x := range logspace(-3.7, -0.001, 200) {
			p := cumulativeMassPDF(x, conc)
			got := tab.radius(p)
			require.InEpsilonf(t, x, got, 1e-3, "c = %g, x = %g", conc, x)
		}
	}
}

func TestTableCaching(t *testing.T) {
	s, err := NewRadialSampler()
	require.NoError(t, err)

	t1, err := s.table(10)
	require.NoError(t, err)
	t2, err := s.table(10)
	require.NoError(t, err)
	require.Same(t, t1, t2)

	t3, err := s.table(5)
	require.NoError(t, err)
	require.NotSame(t, t1, t3)
}

// analyticShellRatio is rho(r)/rho(r_outer) for the NFW profile,
// r_out (1 + c r_out)^2 / (r (1 + c r)^2).
func analyticShellRatio(mids []float64, conc float64) []float64 {
	out := make([]float64, len(mids))
	rOut := mids[len(mids)-1]
	num := rOut * (1 + conc*rOut) * (1 + conc*rOut)
	for i, r := range mids {
		out[i] = num / (r * (1 + conc*r) * (1 + conc*r))
	}
	return out
}

// monteCarloShellRatio bins radial positions and normalizes the shell
// number density of each bin by the outermost bin's.
func monteCarloShellRatio(bins, positions []float64) (mids, ratio []float64) {
	counts := make([]float64, len(bins)-1)
	lo, hi := bins[0], bins[len(bins)-1]
	db := (hi - lo) / float64(len(counts))
	for _, r := range positions {
		if r < lo || r >= hi {
			continue
		}
		idx := int((r - lo) / db)
		if idx == len(counts) {
			idx--
		}
		counts[idx]++
	}

	mids = make([]float64, len(counts))
	for i := range mids {
		mids[i] = (bins[i] + bins[i+1]) / 2
	}

	rOut, nOut := mids[len(mids)-1], counts[len(counts)-1]
	ratio = make([]float64, len(counts))
	for i := range counts {
		ratio[i] = (counts[i] / (mids[i] * mids[i])) / (nOut / (rOut * rOut))
	}
	return mids, ratio
}

// The defining acceptance test of the sampler: binned Monte Carlo
// realizations have to trace the analytic density shape to 2% across
// concentrations.
func TestMCRadialPositionsShellDensity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 2e6-point Monte Carlo test in short mode")
	}

	haloRadius := 0.5
	numPts := 2000000
	bins := make([]float64, 20)
	floats.Span(bins, 0.05, 1)

	s, err := NewRadialSampler()
	require.NoError(t, err)

	for _, conc := range []float64{5, 10, 25} {
		positions, err := s.Sample(haloRadius, conc, numPts, 43)
		require.NoError(t, err)
		for i := range positions {
			positions[i] /= haloRadius
		}

		mids, mc := monteCarloShellRatio(bins, positions)
		analytic := analyticShellRatio(mids, conc)

		for i := range mc {
			require.InEpsilonf(
				t, analytic[i], mc[i], 0.02,
				"c = %g, bin %d at r = %g", conc, i, mids[i],
			)
		}
	}
}
