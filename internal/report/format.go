// Package report turns computed orbits into the textual report: period and
// velocity display strings, the constants block, and block assembly.
package report

import (
	"fmt"

	"github.com/kepler-cli/kepler/internal/astro"
)

// mpsToKmh converts m/s to km/h: ×3600 seconds, ÷1000 meters.
const mpsToKmh = 3600.0 / 1000.0

// PeriodLines renders the verbose multi-line period for an orbit: one line
// per unit (seconds, minutes, days). Ranges are hyphenated per unit in
// (min, max) order as given.
func PeriodLines(o astro.Orbit) []string {
	ps := o.Periods()
	if len(ps) == 1 {
		p := ps[0]
		return []string{
			fmt.Sprintf("%d seconds", p.Seconds),
			fmt.Sprintf("%.2f minutes", p.Minutes),
			fmt.Sprintf("%.2f days", p.Days),
		}
	}
	lo, hi := ps[0], ps[1]
	return []string{
		fmt.Sprintf("%d-%d seconds", lo.Seconds, hi.Seconds),
		fmt.Sprintf("%.2f-%.2f minutes", lo.Minutes, hi.Minutes),
		fmt.Sprintf("%.2f-%.2f days", lo.Days, hi.Days),
	}
}

// VelocityLine renders the circular orbital velocity in km/hr to two
// decimal places. The unit label is km/hr on both the single and the range
// path.
func VelocityLine(o astro.Orbit) string {
	vs := o.Velocities()
	if len(vs) == 1 {
		return fmt.Sprintf("%.2f km/hr", vs[0]*mpsToKmh)
	}
	return fmt.Sprintf("%.2f-%.2f km/hr", vs[0]*mpsToKmh, vs[1]*mpsToKmh)
}

// sci renders a value in scientific notation with an explicit sign, e.g.
// "+6.67430e-11".
func sci(v float64, prec int) string {
	return fmt.Sprintf("%+.*e", prec, v)
}
