// Package config loads CLI configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Output formats accepted by the CLI and the config file.
const (
	FormatText = "text"
	FormatPHH  = "phh"
)

// Config represents the complete CLI configuration.
type Config struct {
	Parse  ParseSettings  `hcl:"parse,block"`
	Output OutputSettings `hcl:"output,block"`
}

// ParseSettings controls how archives are parsed.
type ParseSettings struct {
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// OutputSettings controls where and how parsed hands are written.
type OutputSettings struct {
	Dir    string `hcl:"dir,optional"`
	Format string `hcl:"format,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Parse: ParseSettings{
			Workers:  4,
			LogLevel: "info",
		},
		Output: OutputSettings{
			Dir:    filepath.Join("resources", "parsed"),
			Format: FormatText,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Parse.Workers <= 0 {
		cfg.Parse.Workers = defaults.Parse.Workers
	}
	if cfg.Parse.LogLevel == "" {
		cfg.Parse.LogLevel = defaults.Parse.LogLevel
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaults.Output.Dir
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaults.Output.Format
	}
	if cfg.Output.Format != FormatText && cfg.Output.Format != FormatPHH {
		return nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}

	return &cfg, nil
}
