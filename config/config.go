// Package config loads estimation scenarios: a vessel, a voyage profile
// and tool options from a YAML or JSON file, with CETUS_ environment
// variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jorundf/cetus/core/model"
)

// Config is a complete estimation scenario.
type Config struct {
	Vessel  model.VesselData    `json:"vessel"`
	Voyage  model.VoyageProfile `json:"voyage"`
	Options OptionsConfig       `json:"options"`
	Metrics MetricsConfig       `json:"metrics"`
}

// Load reads and validates a scenario file. The format is selected by
// extension; CETUS_ environment variables override file values
// (CETUS_METRICS__PROMETHEUS_PORT=2112 overrides metrics.prometheus_port).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("CETUS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cetus_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Options.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Vessel.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Voyage.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OptionsConfig adjusts how estimates are computed.
type OptionsConfig struct {
	// IncludeSteamBoilers toggles boiler consumption. Defaults to true.
	IncludeSteamBoilers *bool `json:"include_steam_boilers"`
}

// SetDefaults applies sane defaults.
func (c *OptionsConfig) SetDefaults() {
	if c.IncludeSteamBoilers == nil {
		t := true
		c.IncludeSteamBoilers = &t
	}
}

// Boilers reports whether boiler consumption is included.
func (c OptionsConfig) Boilers() bool {
	return c.IncludeSteamBoilers == nil || *c.IncludeSteamBoilers
}

// MetricsConfig enables the optional Prometheus endpoint.
type MetricsConfig struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	PrometheusPort    int  `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == 0 {
		c.PrometheusPort = 2112
	}
}

// Validate checks the port range.
func (c MetricsConfig) Validate() error {
	if c.PrometheusPort < 1 || c.PrometheusPort > 65535 {
		return fmt.Errorf("prometheus_port %d out of range", c.PrometheusPort)
	}
	return nil
}
