// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validate checks that the configuration describes a usable conversion.
func (c *Config) Validate() error {
	if c.TargetRate < MinSampleRate || c.TargetRate > MaxSampleRate {
		return fmt.Errorf("target rate %d outside [%d,%d] Hz",
			c.TargetRate, MinSampleRate, MaxSampleRate)
	}
	if c.BitDepth < MinBitDepth || c.BitDepth > MaxBitDepth {
		return fmt.Errorf("bit depth %d outside [%d,%d]",
			c.BitDepth, MinBitDepth, MaxBitDepth)
	}
	switch c.Interpolation {
	case "hold", "linear":
	default:
		return fmt.Errorf("unknown interpolation %q (want hold or linear)", c.Interpolation)
	}
	if c.LoopPasses < 0 {
		return fmt.Errorf("loop passes must not be negative, got %d", c.LoopPasses)
	}
	return nil
}

// LoadFile reads a YAML config file over the built-in defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}
