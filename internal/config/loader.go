package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// VariantsFile is the file name looked up in the config directories.
const VariantsFile = "variants.yaml"

// LoadCatalog loads the scoring variant catalog.
// Search order: customPath -> ~/.casino/configs/variants.yaml -> ./configs/variants.yaml -> embedded default
func LoadCatalog(customPath string) (Catalog, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cat, err := ParseCatalog(data)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cat, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(VariantsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cat, err := ParseCatalog(data); err == nil {
				return cat, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", VariantsFile)); err == nil {
		if cat, err := ParseCatalog(data); err == nil {
			return cat, nil
		}
	}

	// Use embedded default YAML
	cat, err := ParseCatalog(defaultVariantsYAML)
	if err != nil {
		return DefaultCatalog(), nil // Fallback to hardcoded if embed fails
	}
	return cat, nil
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, err
	}
	for i := range cat.Variants {
		cat.Variants[i] = cat.Variants[i].Clone()
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// MarshalCatalog encodes a catalog as YAML, e.g. to seed a user config file.
func MarshalCatalog(cat Catalog) ([]byte, error) {
	return yaml.Marshal(cat)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".casino", "configs", filename)
}
