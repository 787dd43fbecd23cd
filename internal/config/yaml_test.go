// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
bank_dir: ./bank
target_rate: 48000
bit_depth: 12
interpolation: hold
spectrum_addr: ":8080"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.BankDir != "./bank" {
		t.Errorf("BankDir = %q, want ./bank", cfg.BankDir)
	}
	if cfg.TargetRate != 48000 {
		t.Errorf("TargetRate = %d, want 48000", cfg.TargetRate)
	}
	if cfg.BitDepth != 12 {
		t.Errorf("BitDepth = %d, want 12", cfg.BitDepth)
	}
	if cfg.Interpolation != "hold" {
		t.Errorf("Interpolation = %q, want hold", cfg.Interpolation)
	}
	// Untouched fields keep their defaults.
	if cfg.LoopPasses != DefaultLoopPasses {
		t.Errorf("LoopPasses = %d, want default %d", cfg.LoopPasses, DefaultLoopPasses)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile("nonexistent.yaml")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoadFile_UnmarshalError(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"RateTooLow", func(c *Config) { c.TargetRate = 4000 }, true},
		{"RateTooHigh", func(c *Config) { c.TargetRate = 384000 }, true},
		{"BitDepthZero", func(c *Config) { c.BitDepth = 0 }, true},
		{"BitDepthHigh", func(c *Config) { c.BitDepth = 24 }, true},
		{"BitDepthOne", func(c *Config) { c.BitDepth = 1 }, false},
		{"BadInterpolation", func(c *Config) { c.Interpolation = "cubic" }, true},
		{"HoldInterpolation", func(c *Config) { c.Interpolation = "hold" }, false},
		{"NegativeLoopPasses", func(c *Config) { c.LoopPasses = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
