package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockfall loads Blockfall configuration.
// Search order: customPath -> ~/.arcade/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlockfallConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBlockfall(data)
		if err != nil {
			return DefaultBlockfallConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("blockfall.yaml"), filepath.Join("configs", "blockfall.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseBlockfall(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlockfall(defaultBlockfallYAML)
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBlockfall decodes YAML over the defaults and validates the result.
func parseBlockfall(data []byte) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
