// Package config provides the kepler configuration loader.
// Config is loaded by merging kepler.yaml → ~/.kepler/config.yaml → KEPLER_* env vars.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kepler-cli/kepler/internal/astro"
	"github.com/kepler-cli/kepler/pkg/errs"
)

// Defaults contains factory-default values applied before any config file is loaded.
var Defaults = map[string]any{
	"log.level":              "info",
	"log.format":             "text",
	"report.separator_width": 50,
}

// ─────────────────────────────────────────────────────────────────────────────
// Config types
// ─────────────────────────────────────────────────────────────────────────────

// Config is the fully-decoded configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
	Bands  []BandConfig `mapstructure:"bands"`
}

// LogConfig controls logging behaviour.
type LogConfig struct {
	Level  string `mapstructure:"level"` // debug | info | warn | error
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // json | text
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	SeparatorWidth int `mapstructure:"separator_width"`
}

// BandConfig is one configured altitude band. It carries either a single
// Altitude or a Min/Max pair, all in kilometers. When any bands are
// configured they replace the built-in default set entirely.
type BandConfig struct {
	Name     string   `mapstructure:"name"`
	Altitude *float64 `mapstructure:"altitude"`
	Min      *float64 `mapstructure:"min"`
	Max      *float64 `mapstructure:"max"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Loader
// ─────────────────────────────────────────────────────────────────────────────

// Load discovers and loads the configuration, walking up directories to find
// kepler.yaml, then merging it with the global config and environment variables.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	// Apply defaults
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}

	// Environment variable binding: KEPLER_LOG_LEVEL → log.level
	v.SetEnvPrefix("KEPLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load global config (~/.kepler/config.yaml) if it exists
	globalCfg := filepath.Join(keplerHome(), "config.yaml")
	if _, err := os.Stat(globalCfg); err == nil {
		v.SetConfigFile(globalCfg)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read global config: %w", err)
		}
	}

	// Load project config
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		path, err := discoverProjectConfig()
		if err == nil {
			v.SetConfigFile(path)
		}
	}

	if v.ConfigFileUsed() != "" || explicitPath != "" {
		if err := v.MergeInConfig(); err != nil && explicitPath != "" {
			return nil, fmt.Errorf("read config %q: %w", explicitPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// validate returns coded errors; no extra wrapping so callers can match
	// on the specific code.
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the factory-default configuration, bypassing discovery.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Report: ReportConfig{SeparatorWidth: 50},
	}
}

// Orbits converts the configured bands into orbits around the given body.
// Returns nil when no bands are configured (caller falls back to the
// built-in default set).
func (c *Config) Orbits(body astro.Body) []astro.Orbit {
	if len(c.Bands) == 0 {
		return nil
	}
	orbits := make([]astro.Orbit, 0, len(c.Bands))
	for _, b := range c.Bands {
		orbits = append(orbits, astro.Orbit{
			Name:     b.Name,
			Body:     body,
			Altitude: b.altitude(),
		})
	}
	return orbits
}

// altitude builds the Altitude variant for a validated band entry.
func (b BandConfig) altitude() astro.Altitude {
	if b.Altitude != nil {
		return astro.Single{Value: *b.Altitude}
	}
	return astro.Range{Min: *b.Min, Max: *b.Max}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// discoverProjectConfig walks up from the CWD looking for kepler.yaml.
func discoverProjectConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "kepler.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("kepler.yaml not found")
}

// validate performs semantic validation on the loaded config.
func validate(cfg *Config) error {
	if cfg.Report.SeparatorWidth < 0 {
		return errs.Newf(errs.ErrValidation, "config.report", "separator_width must not be negative")
	}
	seen := map[string]bool{}
	for _, b := range cfg.Bands {
		if b.Name == "" {
			return errs.Newf(errs.ErrBandInvalid, "config.bands", "band with empty name is not allowed")
		}
		if seen[b.Name] {
			return errs.Newf(errs.ErrBandInvalid, "config.bands", "duplicate band name: %q", b.Name)
		}
		seen[b.Name] = true

		single := b.Altitude != nil
		ranged := b.Min != nil && b.Max != nil
		if single == ranged {
			return errs.Newf(errs.ErrBandInvalid, "config.bands",
				"band %q must carry either altitude or min+max", b.Name).WithResource(b.Name)
		}
		for _, v := range []*float64{b.Altitude, b.Min, b.Max} {
			if v == nil {
				continue
			}
			if math.IsNaN(*v) || math.IsInf(*v, 0) {
				return errs.Newf(errs.ErrAltitudeNotFinite, "config.bands",
					"band %q: altitude must be finite", b.Name).WithResource(b.Name)
			}
			if *v < 0 {
				return errs.Newf(errs.ErrAltitudeNegative, "config.bands",
					"band %q: altitude must not be negative", b.Name).WithResource(b.Name)
			}
		}
	}
	return nil
}

// keplerHome returns the kepler home directory (~/.kepler).
func keplerHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kepler"
	}
	return filepath.Join(home, ".kepler")
}

// KeplerHome is the exported variant for use by other packages.
func KeplerHome() string {
	return keplerHome()
}

// DefaultConfigTemplate documents the supported keys.
const DefaultConfigTemplate = `# kepler.yaml
log:
  level: info      # debug | info | warn | error
  format: text     # text | json
  # file: /path/to/kepler.log

report:
  separator_width: 50

# Optional: replace the built-in Earth band set. Each entry carries either
# a single altitude or a min/max range, in kilometers.
# bands:
#   - name: VLEO
#     min: 100
#     max: 450
#   - name: GEO
#     altitude: 35786
`
