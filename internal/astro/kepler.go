// Package astro implements the two-body orbital model: celestial bodies,
// altitudes above their surface, and the closed-form Keplerian period and
// circular-velocity functions.
package astro

import "math"

const (
	// Pi is truncated to five decimal digits. Every period in the report is
	// pinned to this value; substituting math.Pi shifts the GEO period by a
	// couple of seconds.
	Pi = 3.14159

	// G is the CODATA gravitational constant, N·m²·kg⁻².
	G = 6.67430e-11
)

// OrbitalPeriod returns the Keplerian orbital period in seconds for a
// circular orbit with the given semi-major axis (m) around a body of the
// given mass (kg). Total over the floating-point domain: non-positive
// inputs propagate NaN/Inf rather than erroring.
func OrbitalPeriod(mass, semiMajorAxis float64) float64 {
	return 2 * Pi * math.Sqrt(math.Pow(semiMajorAxis, 3)/(G*mass))
}

// CircularVelocity returns the circular orbital velocity in m/s at the
// given semi-major axis (m) around a body of the given mass (kg).
func CircularVelocity(mass, semiMajorAxis float64) float64 {
	return math.Sqrt(G * mass / semiMajorAxis)
}
