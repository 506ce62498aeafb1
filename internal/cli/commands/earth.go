// kepler earth — orbital periods and velocities for satellites around Earth.
package commands

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kepler-cli/kepler/internal/astro"
	"github.com/kepler-cli/kepler/internal/report"
	"github.com/kepler-cli/kepler/pkg/errs"
)

func NewEarthCmd() *cobra.Command {
	var altitude float64

	cmd := &cobra.Command{
		Use:   "earth [altitude]",
		Short: "Orbital periods and velocities for satellites around Earth",
		Long: "Prints Keplerian orbital periods and circular orbital velocities for the\n" +
			"default Earth altitude bands (VLEO/LEO/MEO/GEO), or for a single\n" +
			"user-supplied altitude in kilometers.",
		Args: cobra.MaximumNArgs(1),
		Example: `  kepler earth
  kepler earth 500
  kepler earth --altitude 35786`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			altSet := cmd.Flags().Changed("altitude")
			if len(args) == 1 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return errs.Newf(errs.ErrAltitudeParse, "earth.resolve.altitude",
						"altitude %q is not a number", args[0]).
						WithAdvice("pass the altitude in kilometers, e.g. `kepler earth 500`")
				}
				altitude = v
				altSet = true
			}

			orbits, err := resolveOrbits(rt, altitude, altSet)
			if err != nil {
				return err
			}

			rt.Log.Debug("rendering report", "body", astro.Earth.Name, "orbits", len(orbits))
			report.New(astro.Earth, orbits, rt.Config.Report.SeparatorWidth).Render(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&altitude, "altitude", "a", 0, "Single altitude in km (replaces the default bands)")
	return cmd
}

// resolveOrbits picks the orbit set: CLI altitude override wins, then
// config-defined bands, then the built-in defaults.
func resolveOrbits(rt *Runtime, altitude float64, altSet bool) ([]astro.Orbit, error) {
	if altSet {
		if math.IsNaN(altitude) || math.IsInf(altitude, 0) {
			return nil, errs.Newf(errs.ErrAltitudeNotFinite, "earth.resolve.altitude",
				"altitude must be finite, got %v", altitude)
		}
		if altitude < 0 {
			return nil, errs.Newf(errs.ErrAltitudeNegative, "earth.resolve.altitude",
				"altitude must not be negative, got %v km", altitude).
				WithAdvice("altitudes are measured above the surface in kilometers")
		}
		return astro.UserDefined(astro.Earth, altitude), nil
	}
	if orbits := rt.Config.Orbits(astro.Earth); orbits != nil {
		return orbits, nil
	}
	return astro.DefaultOrbits(), nil
}
