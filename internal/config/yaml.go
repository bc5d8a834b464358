package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML renders c in the same shape config.yaml is read in.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
