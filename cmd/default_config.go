package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/canesim/canesim/sim/pipeline"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version        string              `yaml:"version"`
	Plant          yaml.Node           `yaml:"plant"`           // decoded by pipeline.ParsePlantConfig
	Scenarios      map[string]Scenario `yaml:"scenarios"`       // sugar and ethanol inputs
	SteamScenarios map[string]Scenario `yaml:"steam_scenarios"` // boiler inputs
}

// Scenario is a named set of form values, keyed by wire name.
type Scenario map[string]string

// readDefaultsConfig parses defaults.yaml with strict field checking.
func readDefaultsConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading defaults file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing defaults file: %w", err)
	}
	return cfg, nil
}

// loadDefaultsConfig parses defaults.yaml into a Config struct, exiting on failure.
func loadDefaultsConfig(path string) Config {
	cfg, err := readDefaultsConfig(path)
	if err != nil {
		logrus.Fatalf("Failed to load defaults: %v", err)
	}
	return cfg
}

// PlantConfig returns the plant section overlaid on the built-in plant, or the built-in
// plant when the section is absent.
func (c Config) PlantConfig() (*pipeline.PlantConfig, error) {
	if c.Plant.Kind == 0 {
		return pipeline.DefaultPlantConfig(), nil
	}
	data, err := yaml.Marshal(&c.Plant)
	if err != nil {
		return nil, fmt.Errorf("re-encoding plant section: %w", err)
	}
	return pipeline.ParsePlantConfig(data)
}

// resolvePlant picks the plant: an explicit file wins over the defaults section.
func resolvePlant(cfg Config, plantPath string) (*pipeline.PlantConfig, error) {
	if plantPath != "" {
		return pipeline.LoadPlantConfig(plantPath)
	}
	return cfg.PlantConfig()
}
