package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemsFile is the YAML layout of an items file
type ItemsFile struct {
	Items []string `yaml:"items"`
}

// LoadItems loads the input items from a YAML file. Items are returned
// verbatim, surrounding whitespace and empty entries included.
func LoadItems(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("items path is not set")
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("items file not found: %s", path)
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	// Parse YAML
	var file ItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}

	if file.Items == nil {
		return nil, fmt.Errorf("items file %s has no items key", path)
	}

	return file.Items, nil
}
