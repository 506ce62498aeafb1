package astro

import (
	"fmt"
	"strconv"
)

// Altitude is a height above a body's surface in kilometers: either a
// Single value or a Range band. Single and Range are the only two
// implementations; formatting code switches exhaustively over them.
type Altitude interface {
	// Describe returns the altitude descriptor used in report headings,
	// e.g. "35786 km" or "100-450 km".
	Describe() string

	sealed()
}

// Single is one altitude in km.
type Single struct {
	Value float64
}

// Range is a band of altitudes in km. Min ≤ Max is assumed, not enforced:
// a reversed band is still computable and renders in the order given.
type Range struct {
	Min float64
	Max float64
}

func (s Single) Describe() string {
	return fmtKm(s.Value) + " km"
}

func (r Range) Describe() string {
	return fmt.Sprintf("%s-%s km", fmtKm(r.Min), fmtKm(r.Max))
}

func (Single) sealed() {}
func (Range) sealed()  {}

// fmtKm renders an altitude without trailing zeros ("100", "450.5").
func fmtKm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
