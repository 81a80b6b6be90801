package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// collectForm merges the form values of a run. Later layers override earlier ones:
// the named preset, then the input file, then each --set pair in order.
func collectForm(scenarios map[string]Scenario, preset, inputPath string, sets []string) (Scenario, error) {
	form := Scenario{}
	if preset != "" {
		sc, ok := scenarios[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q; check defaults.yaml for available scenarios", preset)
		}
		for k, v := range sc {
			form[k] = v
		}
	}
	if inputPath != "" {
		file, err := loadInputFile(inputPath)
		if err != nil {
			return nil, err
		}
		for k, v := range file {
			form[k] = v
		}
	}
	for _, pair := range sets {
		k, v, err := parseSetPair(pair)
		if err != nil {
			return nil, err
		}
		form[k] = v
	}
	return form, nil
}

// loadInputFile reads a YAML mapping of wire names to values.
func loadInputFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}
	return sc, nil
}

// parseSetPair splits a key=value flag argument. The value may be empty.
func parseSetPair(pair string) (string, string, error) {
	k, v, ok := strings.Cut(pair, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid --set %q: expected key=value", pair)
	}
	return k, v, nil
}
