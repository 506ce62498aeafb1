package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kepler-cli/kepler/internal/astro"
	"github.com/kepler-cli/kepler/pkg/errs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kepler.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  level: info\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log config = %+v, want info/text defaults", cfg.Log)
	}
	if cfg.Report.SeparatorWidth != 50 {
		t.Errorf("separator_width = %d, want default 50", cfg.Report.SeparatorWidth)
	}
	if len(cfg.Bands) != 0 {
		t.Errorf("unexpected bands: %+v", cfg.Bands)
	}
}

func TestLoad_Bands(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
bands:
  - name: VLEO
    min: 100
    max: 450
  - name: GEO
    altitude: 35786
`))
	if err != nil {
		t.Fatal(err)
	}

	orbits := cfg.Orbits(astro.Earth)
	if len(orbits) != 2 {
		t.Fatalf("got %d orbits, want 2", len(orbits))
	}
	if r, ok := orbits[0].Altitude.(astro.Range); !ok || r.Min != 100 || r.Max != 450 {
		t.Errorf("VLEO altitude = %#v, want Range{100, 450}", orbits[0].Altitude)
	}
	if s, ok := orbits[1].Altitude.(astro.Single); !ok || s.Value != 35786 {
		t.Errorf("GEO altitude = %#v, want Single{35786}", orbits[1].Altitude)
	}
}

func TestLoad_BandValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		code errs.ErrorCode
	}{
		{
			"empty name",
			"bands:\n  - altitude: 500\n",
			errs.ErrBandInvalid,
		},
		{
			"duplicate name",
			"bands:\n  - name: A\n    altitude: 500\n  - name: A\n    altitude: 600\n",
			errs.ErrBandInvalid,
		},
		{
			"both single and range",
			"bands:\n  - name: A\n    altitude: 500\n    min: 100\n    max: 450\n",
			errs.ErrBandInvalid,
		},
		{
			"neither single nor range",
			"bands:\n  - name: A\n",
			errs.ErrBandInvalid,
		},
		{
			"negative altitude",
			"bands:\n  - name: A\n    altitude: -10\n",
			errs.ErrAltitudeNegative,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errs.IsCode(err, c.code) {
				t.Errorf("error = %v, want code %s", err, c.code)
			}
		})
	}
}

func TestOrbits_NoBandsReturnsNil(t *testing.T) {
	if got := Default().Orbits(astro.Earth); got != nil {
		t.Errorf("Orbits with no bands = %+v, want nil", got)
	}
}
