package core

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Accepted values for Config.DepthRange. An empty value keeps the build-time
// default.
const (
	DepthRangeNegativeOneToOne = "negative_one_to_one"
	DepthRangeZeroToOne        = "zero_to_one"
)

// Config holds the construction-time options of the library. It is usually
// read from a small TOML file owned by the hosting application:
//
//	depth_range = "zero_to_one"
//	normalize_tolerance = 0.0001
//	log_level = "debug"
type Config struct {
	DepthRange         string  `toml:"depth_range"`
	NormalizeTolerance float32 `toml:"normalize_tolerance"`
	LogLevel           string  `toml:"log_level"`
}

// LoadConfig reads and validates the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a TOML document. Unknown keys are rejected so that a
// misspelled option does not silently fall back to a default.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DepthRange {
	case "", DepthRangeNegativeOneToOne, DepthRangeZeroToOne:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDepthRange, c.DepthRange)
	}
	if c.NormalizeTolerance < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTolerance, c.NormalizeTolerance)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
		}
	}
	return nil
}
