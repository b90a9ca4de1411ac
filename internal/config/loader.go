package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadCatalog reads an archetype catalog file.
func LoadCatalog(path string) (*CatalogConfig, error) {
	var cc CatalogConfig
	if err := loadYAML(path, &cc); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return &cc, nil
}
