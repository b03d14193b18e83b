/*package nfw models the radial mass distribution of dark-matter halos under
the Navarro-Frenk-White density profile, and generates Monte Carlo
realizations of particle positions within such halos.

The dimensionless functions in this file work in units of the halo: radii
are scaled radii x = r/R_halo, densities are in units of the halo's density
threshold, and enclosed masses are fractions of the total halo mass. Profile
in model.go attaches physical scales to them, and RadialSampler in sample.go
inverts the cumulative mass function to draw radial positions.
*/
package nfw

import (
	"fmt"
	"math"
)

// gTaylorCutoff is where the closed form of G loses more precision to
// cancellation than the truncated series loses to truncation.
const gTaylorCutoff = 1e-4

// G evaluates g(x) = ln(1+x) - x/(1+x), the NFW mass integral
// int_0^x y/(1+y)^2 dy. Below gTaylorCutoff the two terms of the closed
// form agree to several digits and their difference is garbage, so a series
// expansion is used instead.
func G(x float64) float64 {
	if math.Abs(x) < gTaylorCutoff {
		return x * x * (1.0/2 + x*(-2.0/3+x*(3.0/4)))
	}
	return math.Log(1+x) - x/(1+x)
}

func checkDomain(x, c float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: scaled radius %g", ErrDomain, x)
	}
	return checkConc(c)
}

func checkConc(c float64) error {
	if !(c > 0) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: concentration %g", ErrDomain, c)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s %g", ErrDomain, name, v)
	}
	return nil
}

// outSlice returns out[0] if a target slice was supplied and a fresh slice
// otherwise, following the EvalAll convention.
func outSlice(out [][]float64, n int) []float64 {
	if len(out) == 0 {
		return make([]float64, n)
	}
	if len(out[0]) != n {
		panic(fmt.Sprintf("Output slice has length %d, but input has "+
			"length %d.", len(out[0]), n))
	}
	return out[0]
}

// DimensionlessMassDensity returns the NFW density at scaled radius x in
// units of the halo's density threshold,
//
//	rho~(x, c) = c^3 / (3 g(c)) * 1 / (cx (1+cx)^2).
//
// Every other quantity in the package derives from this shape.
func DimensionlessMassDensity(x, c float64) (float64, error) {
	if err := checkDomain(x, c); err != nil {
		return 0, err
	}
	return dimlessDensity(x, c), nil
}

func dimlessDensity(x, c float64) float64 {
	cx := c * x
	return c * c * c / (3 * G(c)) / (cx * (1 + cx) * (1 + cx))
}

// DimensionlessMassDensityAll evaluates DimensionlessMassDensity at every
// element of xs. An optional output slice can be supplied to prevent
// unneeded heap allocations.
func DimensionlessMassDensityAll(
	xs []float64, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(xs))
	if err := checkConc(c); err != nil {
		return nil, err
	}
	for i, x := range xs {
		if err := checkDomain(x, c); err != nil {
			return nil, err
		}
		res[i] = dimlessDensity(x, c)
	}
	return res, nil
}

// CumulativeMassPDF returns P(<x) = g(cx)/g(c), the fraction of the halo
// mass enclosed within scaled radius x. P is strictly increasing in x and
// reaches 1 at x = 1; the form stays valid past the halo radius, where it
// exceeds 1.
func CumulativeMassPDF(x, c float64) (float64, error) {
	if err := checkDomain(x, c); err != nil {
		return 0, err
	}
	return cumulativeMassPDF(x, c), nil
}

func cumulativeMassPDF(x, c float64) float64 {
	return G(c*x) / G(c)
}

// CumulativeMassPDFAll evaluates CumulativeMassPDF at every element of xs.
func CumulativeMassPDFAll(
	xs []float64, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(xs))
	if err := checkConc(c); err != nil {
		return nil, err
	}
	for i, x := range xs {
		if err := checkDomain(x, c); err != nil {
			return nil, err
		}
		res[i] = cumulativeMassPDF(x, c)
	}
	return res, nil
}

// DimensionlessCircularVelocity returns sqrt(P(<x)/x), the circular
// velocity at scaled radius x in units of the halo's virial velocity
// sqrt(G M / R_halo).
func DimensionlessCircularVelocity(x, c float64) (float64, error) {
	if err := checkDomain(x, c); err != nil {
		return 0, err
	}
	return dimlessVcirc(x, c), nil
}

func dimlessVcirc(x, c float64) float64 {
	return math.Sqrt(cumulativeMassPDF(x, c) / x)
}

// DimensionlessCircularVelocityAll evaluates DimensionlessCircularVelocity
// at every element of xs.
func DimensionlessCircularVelocityAll(
	xs []float64, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(xs))
	if err := checkConc(c); err != nil {
		return nil, err
	}
	for i, x := range xs {
		if err := checkDomain(x, c); err != nil {
			return nil, err
		}
		res[i] = dimlessVcirc(x, c)
	}
	return res, nil
}

// XMax is the scaled radius cx at which the NFW circular velocity curve
// peaks, the root of g(y) = y^2/(1+y)^2. V_max therefore sits at
// x = XMax/c. TestVMaxFixedPoint rederives this constant by bisection.
const XMax = 2.1625815870646098
