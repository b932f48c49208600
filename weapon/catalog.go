package weapon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseCatalog decodes and validates a `weapons:` list
// Each entry starts from DefaultConfig so files only list overrides
func ParseCatalog(data []byte) ([]Config, error) {
	var raw struct {
		Weapons []yaml.Node `yaml:"weapons"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing weapon catalog: %w", err)
	}

	weapons := make([]Config, 0, len(raw.Weapons))
	seen := make(map[string]bool, len(raw.Weapons))
	for i := range raw.Weapons {
		cfg := DefaultConfig()
		if err := raw.Weapons[i].Decode(&cfg); err != nil {
			return nil, fmt.Errorf("weapon %d: %w", i, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("weapon %d: %w", i, err)
		}
		if seen[cfg.Name] {
			return nil, fmt.Errorf("weapon %d: %w: duplicate name %q", i, ErrInvalidConfig, cfg.Name)
		}
		seen[cfg.Name] = true
		weapons = append(weapons, cfg)
	}
	return weapons, nil
}

// LoadCatalog reads a catalog file
func LoadCatalog(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weapon catalog %s: %w", path, err)
	}
	weapons, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return weapons, nil
}
