package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChaos loads Chaos Run configuration.
// Search order: customPath -> ~/.arcade/configs/chaos.yaml -> ./configs/chaos.yaml -> embedded default
func LoadChaos(customPath string) (ChaosConfig, error) {
	cfg := DefaultChaosConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chaos.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "chaos.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	var embedded ChaosConfig
	if err := yaml.Unmarshal(defaultChaosYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultChaosConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads and validates a config file layered over the defaults.
// Missing or broken files report false so the search can continue.
func tryLoad(path string) (ChaosConfig, bool) {
	cfg := DefaultChaosConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyChaosPreset modifies the config based on a difficulty preset.
func ApplyChaosPreset(cfg *ChaosConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.StartSpeed = StartSpeedForPreset(preset)
}
