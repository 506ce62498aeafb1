package astro

import "math"

// Orbit is a named combination of a body and an altitude. Built once per
// report entry, consumed immediately, never mutated.
type Orbit struct {
	Name     string
	Body     Body
	Altitude Altitude
}

// Period is one orbital period broken into display units. Seconds is the
// ceiling-rounded value; Minutes and Days derive from that same rounded
// value, never recomputed from the raw period.
type Period struct {
	Seconds int64
	Minutes float64
	Days    float64
}

func periodAt(b Body, altitudeKm float64) Period {
	secs := int64(math.Ceil(OrbitalPeriod(b.Mass, b.SemiMajorAxis(altitudeKm))))
	mins := float64(secs) / 60
	return Period{
		Seconds: secs,
		Minutes: mins,
		Days:    mins / (60 * 24),
	}
}

// Periods returns the period at each altitude bound: one element for a
// Single altitude, two for a Range, in (min, max) order as given.
func (o Orbit) Periods() []Period {
	switch alt := o.Altitude.(type) {
	case Single:
		return []Period{periodAt(o.Body, alt.Value)}
	case Range:
		return []Period{periodAt(o.Body, alt.Min), periodAt(o.Body, alt.Max)}
	}
	return nil
}

// Velocities returns the circular orbital velocity in m/s at each altitude
// bound, in the same order as Periods.
func (o Orbit) Velocities() []float64 {
	switch alt := o.Altitude.(type) {
	case Single:
		return []float64{CircularVelocity(o.Body.Mass, o.Body.SemiMajorAxis(alt.Value))}
	case Range:
		return []float64{
			CircularVelocity(o.Body.Mass, o.Body.SemiMajorAxis(alt.Min)),
			CircularVelocity(o.Body.Mass, o.Body.SemiMajorAxis(alt.Max)),
		}
	}
	return nil
}

// DefaultOrbits is the built-in Earth band set: VLEO, LEO, MEO, GEO.
func DefaultOrbits() []Orbit {
	return []Orbit{
		{Name: "VLEO", Body: Earth, Altitude: Range{Min: 100, Max: 450}},
		{Name: "LEO", Body: Earth, Altitude: Range{Min: 450, Max: 2000}},
		{Name: "MEO", Body: Earth, Altitude: Range{Min: 2000, Max: 36000}},
		{Name: "GEO", Body: Earth, Altitude: Single{Value: 35786}},
	}
}

// UserDefined returns the single-orbit set used when an altitude override
// is supplied. It replaces the default bands entirely.
func UserDefined(b Body, altitudeKm float64) []Orbit {
	return []Orbit{{Name: "User Defined", Body: b, Altitude: Single{Value: altitudeKm}}}
}
