package balance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a balance config from a YAML file, validates it, and returns
// an immutable handle. Callers load once at startup and share the pointer.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse balance config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
