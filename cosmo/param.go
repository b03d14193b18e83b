/*package cosmo provides background cosmology parameters and the density
scales that halo mass definitions are built on.*/
package cosmo

import (
	"math"
)

// Cosmology is a flat set of background parameters. Values are immutable;
// quantities derived from a Cosmology never go stale. The zero value is not
// a valid cosmology, use one of the named parameter sets or fill in every
// field.
type Cosmology struct {
	H100   float64 // H0 / (100 km/s/Mpc)
	OmegaM float64
	OmegaL float64
}

// Commonly used parameter sets.
var (
	Planck15 = Cosmology{H100: 0.6774, OmegaM: 0.3089, OmegaL: 0.6911}
	WMAP9    = Cosmology{H100: 0.6932, OmegaM: 0.2865, OmegaL: 0.7135}
	Bolshoi  = Cosmology{H100: 0.70, OmegaM: 0.27, OmegaL: 0.73}
)

// HubbleFrac calculates h(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 + k (c/a)**2 = H0**2 h100**2 (OmegaR a**-4 + OmegaM a**-3 +
// OmegaL). Assumes k, r = 0.
func (c Cosmology) HubbleFrac(z float64) float64 {
	return math.Sqrt(c.OmegaM*math.Pow(1.0+z, 3.0) + c.OmegaL)
}

// (And by "Mks", I mean "Mks/h".)
func (c Cosmology) rhoCriticalMks(z float64) float64 {
	H0 := c.H100 * 100
	H0Mks := (H0 * 1000) / MpcMks
	// m = m * H100
	H0MksH := H0Mks / c.H100

	H := c.HubbleFrac(z) * H0MksH
	return 3.0 * H * H / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe. This shows
// up (among other places) in halo definitions and in the definitions of
// the omegas (OmegaFoo = pFoo / pCritical). The returned value is in
// cosmological units / h, MSun/h (Mpc/h)^-3.
func (c Cosmology) RhoCritical(z float64) float64 {
	return c.rhoCriticalMks(z) * math.Pow(MpcMks, 3) / MSunMks
}

// RhoAverage calculates the average density of matter in the universe. The
// returned value is in cosmological units / h.
func (c Cosmology) RhoAverage(z float64) float64 {
	return c.RhoCritical(0) * c.OmegaM * math.Pow(1+z, 3.0)
}

// OmegaMAt returns the matter density parameter at redshift z,
// OmegaM (1+z)**3 / h(z)**2.
func (c Cosmology) OmegaMAt(z float64) float64 {
	hf := c.HubbleFrac(z)
	return c.OmegaM * math.Pow(1+z, 3.0) / (hf * hf)
}
