// Package config loads server defaults for the line detection tools.
//
// Configuration is optional: with no file present every tool falls back to
// built-in defaults. The file path comes from the LINE_MCP_CONFIG environment
// variable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Detection holds default parameters for the line pipeline tools. Tool
// arguments override these per call.
type Detection struct {
	// MinLength is the shortest run, in pixels, kept by extraction.
	MinLength int `yaml:"min_length"`

	// Delta is the Chebyshev adjacency radius for grouping and combining.
	Delta int `yaml:"delta"`

	// AngleEpsilon is the orientation tolerance in degrees for combining.
	AngleEpsilon float64 `yaml:"angle_epsilon"`

	// Threshold is the default luminance cutoff for classifying line pixels.
	Threshold float64 `yaml:"threshold"`
}

// Config is the root of the YAML configuration file.
type Config struct {
	Detection Detection `yaml:"detection"`

	// RenderColor is the default hex color for segment overlays.
	RenderColor string `yaml:"render_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Detection: Detection{
			MinLength:    2,
			Delta:        1,
			AngleEpsilon: 5.0,
			Threshold:    128,
		},
		RenderColor: "#FF0000",
	}
}

// Load reads the YAML file at path and overlays it onto the defaults.
// Fields left at their zero value in the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if file.Detection.MinLength > 0 {
		cfg.Detection.MinLength = file.Detection.MinLength
	}
	if file.Detection.Delta > 0 {
		cfg.Detection.Delta = file.Detection.Delta
	}
	if file.Detection.AngleEpsilon > 0 {
		cfg.Detection.AngleEpsilon = file.Detection.AngleEpsilon
	}
	if file.Detection.Threshold > 0 {
		cfg.Detection.Threshold = file.Detection.Threshold
	}
	if file.RenderColor != "" {
		cfg.RenderColor = file.RenderColor
	}
	return cfg, nil
}

// FromEnv loads the file named by LINE_MCP_CONFIG, or the defaults when the
// variable is unset.
func FromEnv() (*Config, error) {
	path := os.Getenv("LINE_MCP_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
