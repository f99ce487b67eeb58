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

	"github.com/kilianp07/evtrip/core/metrics"
)

// EnvPrefix marks environment variables that override file settings.
// EVTRIP_TRIP__DISTANCE_KM=500 sets trip.distance_km.
const EnvPrefix = "EVTRIP_"

// Config is the root configuration of evtrip.
type Config struct {
	Vehicle VehicleConfig  `json:"vehicle"`
	Trip    TripConfig     `json:"trip"`
	Sweep   SweepConfig    `json:"sweep"`
	Output  OutputConfig   `json:"output"`
	Metrics metrics.Config `json:"metrics"`
	Server  ServerConfig   `json:"server"`
	Logging LoggingConfig  `json:"logging"`
	Sentry  SentryConfig   `json:"sentry"`
}

// Load reads the configuration file at path, applies environment overrides,
// fills in defaults and validates every section. An empty path loads the
// defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Vehicle.SetDefaults()
	c.Trip.SetDefaults()
	c.Sweep.SetDefaults()
	c.Output.SetDefaults()
	c.Server.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.Vehicle.Resolve(); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	if err := c.Trip.Model().Validate(); err != nil {
		return fmt.Errorf("trip: %w", err)
	}
	if err := c.Sweep.Range().Validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep: workers must not be negative")
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
