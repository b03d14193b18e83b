package nfw

import (
	"errors"
)

// Sentinel errors for the package. Callers match them with errors.Is; the
// returned errors wrap these with the offending value.
var (
	// ErrDomain is returned when an argument lies outside the profile's
	// domain: a non-positive or non-finite radius, concentration, mass, or
	// sample size.
	ErrDomain = errors.New("nfw: argument outside profile domain")

	// ErrNonMonotonic is returned when a tabulated cumulative mass function
	// fails to increase strictly. The analytic profile guarantees
	// monotonicity, so hitting this means the table itself is broken.
	ErrNonMonotonic = errors.New("nfw: cumulative mass table is not strictly increasing")

	// ErrGrid is returned when a caller-supplied radial grid is unusable:
	// too few points, not strictly increasing, or outside (0, 1].
	ErrGrid = errors.New("nfw: invalid radial grid")
)
