package cosmo

// Physical constants. The Mks values are what they say they are, and
// GCosmo is Newton's constant rescaled to the unit system used by halo
// quantities: Mpc (km/s)^2 / MSun. (All the factors of h cancel when G
// multiplies an M/R ratio in ./h units, so GCosmo needs no h.)
const (
	MpcMks  = 3.08567758e22 // m
	MSunMks = 1.98892e30    // kg
	GMks    = 6.67408e-11   // m^3 / (kg s^2)

	GCosmo = GMks * MSunMks / MpcMks / 1e6 // Mpc (km/s)^2 / MSun
)
