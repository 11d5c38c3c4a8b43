// Package config loads the greengauge configuration file and supplies
// defaults for everything it leaves unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or partial.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "table"
	DefaultServerAddr   = ":8080"

	// DefaultElectricityPrice is the $/kWh used by the energy engine when
	// no override is configured.
	DefaultElectricityPrice = 0.12
)

// configDirName is the directory under the user home holding the config
// file.
const configDirName = ".greengauge"

// configFileName is the YAML config file name.
const configFileName = "config.yaml"

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// Format is "table" or "json"; the CLI auto-detects when empty.
	Format string `yaml:"format"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// PricingConfig overrides the engines' default unit prices.
type PricingConfig struct {
	ElectricityPerKWh float64 `yaml:"electricity_per_kwh"`
}

// HydraulicConfig overrides hydraulic analysis defaults.
type HydraulicConfig struct {
	// PressureTolerancePSI is the allowed shortfall between available and
	// required outlet pressure before a warning is raised. Zero uses the
	// engine default.
	PressureTolerancePSI float64 `yaml:"pressure_tolerance_psi"`
}

// Config is the root configuration document.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
	Server    ServerConfig    `yaml:"server"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Hydraulic HydraulicConfig `yaml:"hydraulic"`
}

// Default returns a fully populated configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Output:  OutputConfig{Format: DefaultOutputFormat},
		Server:  ServerConfig{Addr: DefaultServerAddr},
		Pricing: PricingConfig{ElectricityPerKWh: DefaultElectricityPrice},
	}
}

// DefaultPath returns the per-user config file location
// (~/.greengauge/config.yaml). The fallback when the home directory cannot
// be resolved is the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads the config file at path, layering it over Default(). A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Pricing.ElectricityPerKWh <= 0 {
		c.Pricing.ElectricityPerKWh = DefaultElectricityPrice
	}
}
