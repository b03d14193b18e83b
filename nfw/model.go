package nfw

import (
	"fmt"
	"math"

	"github.com/nehapjoshi/halotools/cosmo"
	"github.com/nehapjoshi/halotools/halo"
)

// Profile attaches physical scales to the dimensionless NFW shape for halos
// identified by a (mass definition, cosmology, redshift) triple. The density
// threshold is computed once at construction and the three identifying
// fields are never mutated afterwards; changing any part of the identity
// means building a new Profile. Units follow the cosmo package: masses in
// MSun/h, lengths in Mpc/h, velocities in km/s.
type Profile struct {
	Cosmology cosmo.Cosmology
	Redshift  float64
	MassDef   halo.MassDef

	threshold float64
}

// NewProfile builds a Profile for the given identity. It fails if z is
// negative or the resulting density threshold is not positive and finite.
func NewProfile(c cosmo.Cosmology, z float64, mdef halo.MassDef) (*Profile, error) {
	if !(z >= 0) || math.IsInf(z, 0) {
		return nil, fmt.Errorf("%w: redshift %g", ErrDomain, z)
	}
	threshold := mdef.DensityThreshold(c, z)
	if !(threshold > 0) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf(
			"%w: density threshold %g for definition %v", ErrDomain, threshold, mdef,
		)
	}
	return &Profile{
		Cosmology: c, Redshift: z, MassDef: mdef, threshold: threshold,
	}, nil
}

// DensityThreshold returns the density bounding halos under this Profile's
// mass definition, in MSun/h (Mpc/h)^-3.
func (p *Profile) DensityThreshold() float64 { return p.threshold }

// HaloMassToHaloRadius converts a halo mass to the radius of the sphere
// enclosing it at the threshold density.
func (p *Profile) HaloMassToHaloRadius(m float64) (float64, error) {
	if err := checkPositive("halo mass", m); err != nil {
		return 0, err
	}
	return halo.RadiusFromMass(m, p.threshold), nil
}

// HaloRadiusToHaloMass is the exact algebraic inverse of
// HaloMassToHaloRadius.
func (p *Profile) HaloRadiusToHaloMass(r float64) (float64, error) {
	if err := checkPositive("halo radius", r); err != nil {
		return 0, err
	}
	return halo.MassFromRadius(r, p.threshold), nil
}

// MassDensity returns the NFW mass density at radius r within a halo of
// mass m and concentration c. It is exactly
// DensityThreshold() * DimensionlessMassDensity(r/R_halo, c).
func (p *Profile) MassDensity(r, m, c float64) (float64, error) {
	rh, err := p.HaloMassToHaloRadius(m)
	if err != nil {
		return 0, err
	}
	rho, err := DimensionlessMassDensity(r/rh, c)
	if err != nil {
		return 0, err
	}
	return p.threshold * rho, nil
}

// EnclosedMass returns the mass within radius r of the halo center,
// m * CumulativeMassPDF(r/R_halo, c). This identity is the definition of
// the enclosed mass, not an approximation to it.
func (p *Profile) EnclosedMass(r, m, c float64) (float64, error) {
	rh, err := p.HaloMassToHaloRadius(m)
	if err != nil {
		return 0, err
	}
	frac, err := CumulativeMassPDF(r/rh, c)
	if err != nil {
		return 0, err
	}
	return m * frac, nil
}

// VirialVelocity returns sqrt(G m / R_halo) in km/s, the velocity scale the
// dimensionless circular velocity is measured in.
func (p *Profile) VirialVelocity(m float64) (float64, error) {
	rh, err := p.HaloMassToHaloRadius(m)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(cosmo.GCosmo * m / rh), nil
}

// CircularVelocity returns sqrt(G M(<r) / r) in km/s.
func (p *Profile) CircularVelocity(r, m, c float64) (float64, error) {
	menc, err := p.EnclosedMass(r, m, c)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(cosmo.GCosmo * menc / r), nil
}

// VMax returns the peak of the circular velocity curve. The peak sits at
// the fixed scaled radius XMax/c, so no numerical maximization is needed.
func (p *Profile) VMax(m, c float64) (float64, error) {
	vvir, err := p.VirialVelocity(m)
	if err != nil {
		return 0, err
	}
	v, err := DimensionlessCircularVelocity(XMax/c, c)
	if err != nil {
		return 0, err
	}
	return vvir * v, nil
}

// HaloMassToHaloRadiusAll converts every halo mass in ms to its radius. An
// optional output slice can be supplied to prevent unneeded heap
// allocations.
func (p *Profile) HaloMassToHaloRadiusAll(
	ms []float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(ms))
	for i, m := range ms {
		if err := checkPositive("halo mass", m); err != nil {
			return nil, err
		}
		res[i] = halo.RadiusFromMass(m, p.threshold)
	}
	return res, nil
}

// HaloRadiusToHaloMassAll converts every halo radius in rs to its mass.
func (p *Profile) HaloRadiusToHaloMassAll(
	rs []float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(rs))
	for i, r := range rs {
		if err := checkPositive("halo radius", r); err != nil {
			return nil, err
		}
		res[i] = halo.MassFromRadius(r, p.threshold)
	}
	return res, nil
}

// VirialVelocityAll evaluates VirialVelocity at every halo mass in ms.
func (p *Profile) VirialVelocityAll(
	ms []float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(ms))
	rhs, err := p.HaloMassToHaloRadiusAll(ms)
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		res[i] = math.Sqrt(cosmo.GCosmo * m / rhs[i])
	}
	return res, nil
}

// VMaxAll evaluates VMax at every halo mass in ms for a single
// concentration.
func (p *Profile) VMaxAll(
	ms []float64, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(ms))
	v, err := DimensionlessCircularVelocity(XMax/c, c)
	if err != nil {
		return nil, err
	}
	vvirs, err := p.VirialVelocityAll(ms, res)
	if err != nil {
		return nil, err
	}
	for i := range vvirs {
		res[i] = vvirs[i] * v
	}
	return res, nil
}

// MassDensityAll evaluates MassDensity at every radius in rs for a single
// (m, c) pair. An optional output slice can be supplied to prevent unneeded
// heap allocations.
func (p *Profile) MassDensityAll(
	rs []float64, m, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(rs))
	rh, err := p.HaloMassToHaloRadius(m)
	if err != nil {
		return nil, err
	}
	for i, r := range rs {
		rho, err := DimensionlessMassDensity(r/rh, c)
		if err != nil {
			return nil, err
		}
		res[i] = p.threshold * rho
	}
	return res, nil
}

// EnclosedMassAll evaluates EnclosedMass at every radius in rs for a single
// (m, c) pair.
func (p *Profile) EnclosedMassAll(
	rs []float64, m, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(rs))
	rh, err := p.HaloMassToHaloRadius(m)
	if err != nil {
		return nil, err
	}
	for i, r := range rs {
		frac, err := CumulativeMassPDF(r/rh, c)
		if err != nil {
			return nil, err
		}
		res[i] = m * frac
	}
	return res, nil
}

// CircularVelocityAll evaluates CircularVelocity at every radius in rs for
// a single (m, c) pair.
func (p *Profile) CircularVelocityAll(
	rs []float64, m, c float64, out ...[]float64,
) ([]float64, error) {
	res := outSlice(out, len(rs))
	menc, err := p.EnclosedMassAll(rs, m, c)
	if err != nil {
		return nil, err
	}
	for i, r := range rs {
		if err := checkPositive("radius", r); err != nil {
			return nil, err
		}
		res[i] = math.Sqrt(cosmo.GCosmo * menc[i] / r)
	}
	return res, nil
}
