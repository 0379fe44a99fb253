package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// networkConfig is the YAML shape a flowsheet topology is read from: a
// unit name list (isolated units are legal — they just never participate
// in any cycle) plus a directed arc list connecting them.
type networkConfig struct {
	Units []string `yaml:"units"`
	Arcs  []struct {
		Name string `yaml:"name"`
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"arcs"`
}

func loadNetworkConfig(path string) (*networkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seqdecomp: reading %q: %w", path, err)
	}

	var cfg networkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("seqdecomp: parsing %q: %w", path, err)
	}

	return &cfg, nil
}
