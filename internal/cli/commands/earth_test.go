package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kepler-cli/kepler/internal/core/config"
	"github.com/kepler-cli/kepler/internal/core/logger"
	"github.com/kepler-cli/kepler/pkg/errs"
)

func runEarth(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := NewEarthCmd()
	cmd.SetContext(NewContext(context.Background(), &Runtime{
		Config: cfg,
		Log:    logger.Nop(),
	}))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEarth_DefaultBands(t *testing.T) {
	out, err := runEarth(t, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	for _, band := range []string{"VLEO", "LEO", "MEO", "GEO"} {
		if !strings.Contains(out, band) {
			t.Errorf("report missing default band %q", band)
		}
	}
}

func TestEarth_PositionalAltitude(t *testing.T) {
	out, err := runEarth(t, config.Default(), "500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "User Defined (500 km)") {
		t.Errorf("missing user-defined orbit, got:\n%s", out)
	}
	if strings.Contains(out, "VLEO") {
		t.Error("default bands should be suppressed by the altitude override")
	}
}

func TestEarth_AltitudeFlag(t *testing.T) {
	out, err := runEarth(t, config.Default(), "--altitude", "35786")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "User Defined (35786 km)") {
		t.Errorf("missing user-defined orbit, got:\n%s", out)
	}
}

func TestEarth_ConfigBandsReplaceDefaults(t *testing.T) {
	alt := 550.0
	cfg := config.Default()
	cfg.Bands = []config.BandConfig{{Name: "Starlink", Altitude: &alt}}

	out, err := runEarth(t, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Starlink (550 km)") {
		t.Errorf("missing configured band, got:\n%s", out)
	}
	if strings.Contains(out, "VLEO") {
		t.Error("default bands should be replaced by configured bands")
	}
}

func TestEarth_CLIAltitudeWinsOverConfigBands(t *testing.T) {
	alt := 550.0
	cfg := config.Default()
	cfg.Bands = []config.BandConfig{{Name: "Starlink", Altitude: &alt}}

	out, err := runEarth(t, cfg, "500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "User Defined (500 km)") || strings.Contains(out, "Starlink") {
		t.Errorf("CLI altitude should win over config bands, got:\n%s", out)
	}
}

func TestEarth_RejectsNegativeAltitude(t *testing.T) {
	_, err := runEarth(t, config.Default(), "--altitude=-100")
	if !errs.IsCode(err, errs.ErrAltitudeNegative) {
		t.Errorf("error = %v, want %s", err, errs.ErrAltitudeNegative)
	}
}

func TestEarth_RejectsNonNumericAltitude(t *testing.T) {
	_, err := runEarth(t, config.Default(), "very-high")
	if !errs.IsCode(err, errs.ErrAltitudeParse) {
		t.Errorf("error = %v, want %s", err, errs.ErrAltitudeParse)
	}
}

func TestEarth_RejectsNonFiniteAltitude(t *testing.T) {
	_, err := runEarth(t, config.Default(), "NaN")
	if !errs.IsCode(err, errs.ErrAltitudeNotFinite) {
		t.Errorf("error = %v, want %s", err, errs.ErrAltitudeNotFinite)
	}
}
