package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kepler-cli/kepler/internal/astro"
	"github.com/kepler-cli/kepler/pkg/pprint"
)

// DefaultSeparatorWidth is the dash separator width used when the config
// does not override it.
const DefaultSeparatorWidth = 50

// Report renders the constants, periods, and velocities blocks for a set
// of orbits sharing one body.
type Report struct {
	Body   astro.Body
	Orbits []astro.Orbit
	Width  int // separator width; DefaultSeparatorWidth when zero
}

// New builds a Report for the given body and orbit set.
func New(body astro.Body, orbits []astro.Orbit, width int) *Report {
	if width <= 0 {
		width = DefaultSeparatorWidth
	}
	return &Report{Body: body, Orbits: orbits, Width: width}
}

// Render writes the full report to w: a Constants block, an Orbital
// Periods block, and an Orbital Velocities block, each bracketed by the
// separator line, with blank lines between blocks.
func (r *Report) Render(w io.Writer) {
	sep := strings.Repeat("-", r.Width)

	r.renderConstants(w, sep)
	fmt.Fprintln(w)
	r.renderPeriods(w, sep)
	fmt.Fprintln(w)
	r.renderVelocities(w, sep)
}

func (r *Report) renderConstants(w io.Writer, sep string) {
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, pprint.StyleAccent.Render("Constants"))
	fmt.Fprintf(w, "π             = %v\n", astro.Pi)
	fmt.Fprintf(w, "G             = %s N·m²·kg⁻²\n", sci(astro.G, 5))
	fmt.Fprintf(w, "%-13s = %s kg\n", r.Body.Name+" mass", sci(r.Body.Mass, 4))
	fmt.Fprintf(w, "%-13s = %s m\n", r.Body.Name+" radius", sci(r.Body.Radius, 4))
	fmt.Fprintln(w, sep)
}

func (r *Report) renderPeriods(w io.Writer, sep string) {
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, pprint.StyleAccent.Render("Orbital Periods"))
	for _, o := range r.Orbits {
		fmt.Fprintf(w, "%s (%s)\n", o.Name, o.Altitude.Describe())
		for _, line := range PeriodLines(o) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w, sep)
}

func (r *Report) renderVelocities(w io.Writer, sep string) {
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, pprint.StyleAccent.Render("Orbital Velocities"))
	for _, o := range r.Orbits {
		fmt.Fprintf(w, "%s (%s)\n", o.Name, o.Altitude.Describe())
		fmt.Fprintf(w, "  %s\n", VelocityLine(o))
	}
	fmt.Fprintln(w, sep)
}
