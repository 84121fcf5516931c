// Package config loads the YAML-configurable knobs for the `full` demo
// scenario, via a yaml.v3 decoder with KnownFields(true) so a typo'd key
// is a load error, not a silently ignored field.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlannerConfig groups the route-planner's search limits.
type PlannerConfig struct {
	MaxJobsPerCart    int `yaml:"max_jobs_per_cart"`
	PlanningStartTime int64 `yaml:"planning_start_time"`
	PlanningInterval  int64 `yaml:"planning_interval"`
}

// FleetConfig groups how the demo fleet is staffed.
type FleetConfig struct {
	CartCount int `yaml:"cart_count"`
	Capacity  int `yaml:"capacity"`
}

// ArrivalsConfig groups the transfer-job generator's parameters.
type ArrivalsConfig struct {
	Rate    float64 `yaml:"rate"`
	Horizon int64   `yaml:"horizon"`
	Seed    int64   `yaml:"seed"`
}

// Config is the full YAML config structure for the `full` command.
type Config struct {
	Planner  PlannerConfig  `yaml:"planner"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Arrivals ArrivalsConfig `yaml:"arrivals"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		Planner: PlannerConfig{
			MaxJobsPerCart:    3,
			PlanningStartTime: 0,
			PlanningInterval:  int64(60), // seconds
		},
		Fleet: FleetConfig{
			CartCount: 3,
			Capacity:  10,
		},
		Arrivals: ArrivalsConfig{
			Rate:    0.1,
			Horizon: int64(3600),
			Seed:    1,
		},
	}
}

// Load reads and strictly decodes a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
