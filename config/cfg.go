// Package config loads program configuration: named breakpoints and logging.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

type (
	// BreakpointConfig names a single media-query condition. Breakpoints are
	// kept as an ordered list because definition order is user-visible in
	// rendered output.
	BreakpointConfig struct {
		Name      string `yaml:"name"`
		Condition string `yaml:"condition"`
	}

	LoggerConfig struct {
		Level       string `yaml:"level"`
		Destination string `yaml:"destination,omitempty"`
		Mode        string `yaml:"mode,omitempty"`
	}

	LoggingConfig struct {
		FileLogger    LoggerConfig `yaml:"file"`
		ConsoleLogger LoggerConfig `yaml:"console"`
	}

	Config struct {
		Version     int                `yaml:"version"`
		Breakpoints []BreakpointConfig `yaml:"breakpoints"`
		Logging     LoggingConfig      `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and performs
// validation. An empty path returns validated defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// overwrite cfg values with values from the file
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate reports every configuration problem at once.
func (cfg *Config) validate() error {
	var errs error

	if cfg.Version != 1 {
		errs = multierr.Append(errs, fmt.Errorf("unsupported configuration version %d", cfg.Version))
	}

	seen := make(map[string]bool, len(cfg.Breakpoints))
	for i, bp := range cfg.Breakpoints {
		if bp.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("breakpoint %d has no name", i))
			continue
		}
		if seen[bp.Name] {
			errs = multierr.Append(errs, fmt.Errorf("duplicate breakpoint name %q", bp.Name))
		}
		seen[bp.Name] = true
		if bp.Condition == "" {
			errs = multierr.Append(errs, fmt.Errorf("breakpoint %q has no condition", bp.Name))
		}
	}

	for _, lc := range []struct {
		name string
		conf LoggerConfig
	}{
		{"console", cfg.Logging.ConsoleLogger},
		{"file", cfg.Logging.FileLogger},
	} {
		switch lc.conf.Level {
		case "", "none", "normal", "debug":
		default:
			errs = multierr.Append(errs, fmt.Errorf("bad %s logger level %q", lc.name, lc.conf.Level))
		}
		switch lc.conf.Mode {
		case "", "append", "overwrite":
		default:
			errs = multierr.Append(errs, fmt.Errorf("bad %s logger mode %q", lc.name, lc.conf.Mode))
		}
	}

	if errs != nil {
		return fmt.Errorf("invalid configuration: %w", errs)
	}
	return nil
}

// Prepare returns the default configuration file content.
func Prepare() ([]byte, error) {
	return bytes.Clone(defaultConfig), nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
