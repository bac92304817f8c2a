package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platformer tuning.
// Search order: customPath -> ~/.platformer/config.yaml ->
// ./configs/platformer.yaml -> embedded default.
func Load(customPath string) (Tuning, error) {
	var t Tuning

	// A custom path is authoritative: failures are reported, not papered over.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return t, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil {
				return t, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil {
			return t, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &t); err != nil {
		return DefaultTuning(), nil // hardcoded fallback if the embed is bad
	}
	return t, nil
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "config.yaml")
}
