// Package config loads the project configuration file: the entrypoints to
// analyze, the package root, and the implicit lazy import edges.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up in the package root.
const DefaultFile = "webcomp.yaml"

// Config is the project configuration.
type Config struct {
	// Root is the package root URL all relative entrypoints resolve against.
	Root string `yaml:"root"`
	// Entrypoints are the URLs analysis starts from.
	Entrypoints []string `yaml:"entrypoints"`
	// LazyEdges maps a document URL to imports it loads dynamically; they
	// are treated as if the document had declared them.
	LazyEdges map[string][]string `yaml:"lazyEdges"`
}

// Load reads and decodes a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", path, err)
	}
	return cfg, nil
}
