package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadReef loads the reef game configuration.
// Search order: customPath -> ~/.reef/configs/reef.yaml -> ./configs/reef.yaml -> embedded default.
// Every loaded configuration is validated; an invalid file is an error
// rather than a silent fallback, so bad tuning fails at startup.
func LoadReef(customPath string) (ReefConfig, error) {
	var cfg ReefConfig

	// Explicit path must load and validate
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("reef.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("invalid config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/reef.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config configs/reef.yaml: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config configs/reef.yaml: %w", err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultReefYAML, &cfg); err != nil {
		return DefaultReefConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reef", "configs", filename)
}
