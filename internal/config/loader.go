package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoard loads the board configuration.
// Search order: customPath -> ~/.flapboard/board.yaml -> ./configs/board.yaml -> embedded default
func LoadBoard(customPath string) (BoardConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultBoardConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/board.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBoardYAML, &cfg); err != nil {
		return DefaultBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// normalized replaces unusable values with defaults.
func (c BoardConfig) normalized() BoardConfig {
	def := DefaultBoardConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.DevMem.Path == "" {
		c.DevMem.Path = def.DevMem.Path
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = def.Window.Scale
	}
	if c.TUI.CellW <= 0 {
		c.TUI.CellW = def.TUI.CellW
	}
	if c.TUI.CellH <= 0 {
		c.TUI.CellH = def.TUI.CellH
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapboard", filename)
}
