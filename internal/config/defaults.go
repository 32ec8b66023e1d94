package config

import (
	_ "embed"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the built-in board configuration.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		TickRate: 60,
		Seed:     0,
		Log: LogConfig{
			Level: "info",
		},
		DevMem: DevMemConfig{
			Path:           "/dev/mem",
			FrameBase:      0xC8000000,
			PeripheralBase: 0xFF200000,
		},
		Window: WindowConfig{
			Scale: 3,
		},
		TUI: TUIConfig{
			CellW: 4,
			CellH: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoardYAML
}
