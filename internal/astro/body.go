package astro

// Body is an immutable celestial body. A single Body value is shared
// read-only by every Orbit in a run; nothing mutates it after construction.
type Body struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // m
}

// Earth carries the nominal values used by the default orbit set.
var Earth = Body{
	Name:   "Earth",
	Mass:   5.9722e24,
	Radius: 6.3781e6,
}

// SemiMajorAxis returns the orbital radius in meters for a circular orbit
// at the given altitude (km) above the surface.
func (b Body) SemiMajorAxis(altitudeKm float64) float64 {
	return b.Radius + altitudeKm*1000
}
