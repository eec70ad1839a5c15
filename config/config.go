// Package config loads clearway's tunable defaults from an embedded YAML
// document, optionally overlaid by a user-supplied file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// PlannerConfig holds the planner.Options defaults.
type PlannerConfig struct {
	Lambda           float64 `yaml:"lambda"`
	RobotRadius      float64 `yaml:"robot_radius"`
	TraceFrameTarget int     `yaml:"trace_frame_target"`
}

// MapConfig holds defaults used when no map file is supplied.
type MapConfig struct {
	DefaultRows int `yaml:"default_rows"`
	DefaultCols int `yaml:"default_cols"`
}

// Config is clearway's full configuration surface.
type Config struct {
	Planner PlannerConfig `yaml:"planner"`
	Map     MapConfig     `yaml:"map"`
}

// Load parses the embedded defaults, then overlays path if non-empty
// (only the fields present in the file override the embedded values).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
