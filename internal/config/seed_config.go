package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"searchportal/internal/models"
)

// SeedConfig represents the structure of the seed file.
type SeedConfig struct {
	Webpages []models.WebpageInput `yaml:"webpages"`
}

// LoadSeedFile loads extra webpages from a YAML file.
// Returns nil without error if the file doesn't exist.
func LoadSeedFile(path string) (*SeedConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Seed file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg SeedConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return &cfg, nil
}

// Inputs returns the seed webpages, or nil for a nil config.
func (c *SeedConfig) Inputs() []models.WebpageInput {
	if c == nil {
		return nil
	}
	return c.Webpages
}
