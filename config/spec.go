package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/barisgit/compgen/internal/component"
)

// LoadComponentSpec reads a component spec file and decodes it over the
// project defaults. Keys absent from the file keep their default values.
func LoadComponentSpec(path string, defaults component.GenerationConfig) (component.GenerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return component.GenerationConfig{}, fmt.Errorf("failed to read component spec %s: %w", path, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return component.GenerationConfig{}, fmt.Errorf("failed to parse component spec %s: %w", path, err)
	}

	return spec, nil
}

// WriteComponentSpec saves a configuration as a component spec file
func WriteComponentSpec(path string, spec component.GenerationConfig, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("component spec %s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to encode component spec: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write component spec %s: %w", path, err)
	}
	return nil
}
