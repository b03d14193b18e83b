package nfw

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// EnclosedMassFraction maps a scaled radius to the fraction of the total
// halo mass enclosed within it. AnalyticMassFraction is the closed form the
// rest of the package is built on; QuadMassFraction integrates the density
// shape directly and exists so the closed form can be cross-checked against
// it. Pick one explicitly, they are never swapped behind the caller's back.
type EnclosedMassFraction interface {
	MassFraction(x, c float64) (float64, error)
}

// AnalyticMassFraction evaluates g(cx)/g(c).
type AnalyticMassFraction struct{}

func (AnalyticMassFraction) MassFraction(x, c float64) (float64, error) {
	return CumulativeMassPDF(x, c)
}

// defaultQuadNodes keeps the quadrature error well under the 1e-4 relative
// agreement the analytic form is tested against.
const defaultQuadNodes = 200

// QuadMassFraction computes the shell integral 4 pi int_0^x x'^2
// rho~(x', c) dx' with fixed-location Gauss-Legendre quadrature and
// normalizes by the total at the halo radius. The mean scaled density
// inside x = 1 is 1 by the threshold normalization, so that total is
// 4 pi / 3 for every concentration. The integrand goes as x' near zero, so
// interior-node rules handle the origin without special casing.
type QuadMassFraction struct {
	// Nodes is the number of quadrature nodes. Zero means defaultQuadNodes.
	Nodes int
}

func (q QuadMassFraction) MassFraction(x, c float64) (float64, error) {
	if err := checkDomain(x, c); err != nil {
		return 0, err
	}
	n := q.Nodes
	if n == 0 {
		n = defaultQuadNodes
	}
	f := func(t float64) float64 {
		return 4 * math.Pi * t * t * dimlessDensity(t, c)
	}
	total := 4 * math.Pi / 3
	return quad.Fixed(f, 0, x, n, quad.Legendre{}, 0) / total, nil
}

// typechecking
var (
	_ EnclosedMassFraction = AnalyticMassFraction{}
	_ EnclosedMassFraction = QuadMassFraction{}
)
