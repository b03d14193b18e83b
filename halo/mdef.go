/*package halo implements overdensity mass definitions and the conversions
between halo mass and halo radius that they induce.*/
package halo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nehapjoshi/halotools/cosmo"
)

// ErrMassDef is returned when a mass definition string cannot be parsed.
var ErrMassDef = errors.New("halo: unrecognized mass definition")

type refDensity int

const (
	critRef refDensity = iota
	meanRef
	virRef
)

// MassDef identifies how a halo's boundary is defined: a fixed overdensity
// multiple of either the critical density ("200c", "500c", "2500c", ...) or
// the mean matter density ("200m", ...), or the redshift-dependent
// Bryan & Norman (1998) virial overdensity ("vir").
type MassDef struct {
	delta float64
	ref   refDensity
}

// The definitions that show up in most halo catalogs.
var (
	M200c  = MassDef{200, critRef}
	M200m  = MassDef{200, meanRef}
	M500c  = MassDef{500, critRef}
	M2500c = MassDef{2500, critRef}
	MVir   = MassDef{0, virRef}
)

// ParseMassDef parses strings of the form "<delta>c", "<delta>m", or "vir".
func ParseMassDef(s string) (MassDef, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "vir" {
		return MVir, nil
	}

	var ref refDensity
	switch {
	case strings.HasSuffix(t, "c"):
		ref = critRef
	case strings.HasSuffix(t, "m"):
		ref = meanRef
	default:
		return MassDef{}, fmt.Errorf("%w: %q", ErrMassDef, s)
	}

	delta, err := strconv.ParseFloat(t[:len(t)-1], 64)
	if err != nil || delta <= 0 || math.IsInf(delta, 0) {
		return MassDef{}, fmt.Errorf("%w: %q", ErrMassDef, s)
	}
	return MassDef{delta, ref}, nil
}

func (d MassDef) String() string {
	switch d.ref {
	case critRef:
		return fmt.Sprintf("%gc", d.delta)
	case meanRef:
		return fmt.Sprintf("%gm", d.delta)
	case virRef:
		return "vir"
	}
	panic(":3")
}

// DensityThreshold returns the density that a sphere bounded by this
// definition encloses on average, delta * rho_ref(z), in MSun/h (Mpc/h)^-3.
// The result is positive for any valid cosmology and z >= 0.
func (d MassDef) DensityThreshold(c cosmo.Cosmology, z float64) float64 {
	switch d.ref {
	case critRef:
		return d.delta * c.RhoCritical(z)
	case meanRef:
		return d.delta * c.RhoAverage(z)
	case virRef:
		// Bryan & Norman (1998) fit to the spherical collapse overdensity.
		x := c.OmegaMAt(z) - 1
		delta := 18*math.Pi*math.Pi + 82*x - 39*x*x
		return delta * c.RhoCritical(z)
	}
	panic(":3")
}

// RadiusFromMass inverts M = (4/3) pi R^3 rho for R. rho is the density
// threshold of whatever definition M is measured in.
func RadiusFromMass(m, rho float64) float64 {
	return math.Pow(m/(rho*4*math.Pi/3), 1.0/3)
}

// MassFromRadius computes M = (4/3) pi R^3 rho, the exact algebraic inverse
// of RadiusFromMass.
func MassFromRadius(r, rho float64) float64 {
	return rho * 4 * math.Pi / 3 * (r * r * r)
}

// Radius converts halo masses to halo radii in place in out. out must be the
// same length as ms.
func (d MassDef) Radius(c cosmo.Cosmology, z float64, ms, out []float64) {
	if len(ms) != len(out) {
		panic(fmt.Sprintf("len(ms) = %d, but len(out) = %d", len(ms), len(out)))
	}
	rho := d.DensityThreshold(c, z)
	factor := rho * 4 * math.Pi / 3
	for i, m := range ms {
		out[i] = math.Pow(m/factor, 1.0/3)
	}
}

// Mass converts halo radii to halo masses in place in out. out must be the
// same length as rs.
func (d MassDef) Mass(c cosmo.Cosmology, z float64, rs, out []float64) {
	if len(rs) != len(out) {
		panic(fmt.Sprintf("len(rs) = %d, but len(out) = %d", len(rs), len(out)))
	}
	rho := d.DensityThreshold(c, z)
	factor := rho * 4 * math.Pi / 3
	for i, r := range rs {
		out[i] = factor * (r * r * r)
	}
}
