// Package config provides the per-tick switch decoder and YAML-based board
// configuration loading.
package config

// BoardConfig contains process-level settings for running the game on a
// board or an emulator. Gameplay parameters are not here: they come from
// the switch register every tick (see Decode).
type BoardConfig struct {
	TickRate int          `yaml:"tick_rate"` // Simulation ticks per second
	Seed     int64        `yaml:"seed"`      // RNG seed, 0 = time based
	Log      LogConfig    `yaml:"log"`
	DevMem   DevMemConfig `yaml:"devmem"`
	Window   WindowConfig `yaml:"window"`
	TUI      TUIConfig    `yaml:"tui"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Optional log file, empty = stderr
}

// DevMemConfig defines the physical memory windows of the hardware board.
type DevMemConfig struct {
	Path           string `yaml:"path"`
	FrameBase      uint64 `yaml:"frame_base"`
	PeripheralBase uint64 `yaml:"peripheral_base"`
}

// WindowConfig defines the Ebiten window emulator.
type WindowConfig struct {
	Scale int `yaml:"scale"`
}

// TUIConfig defines how many surface pixels one terminal cell covers in the
// terminal emulator. Each cell shows two vertically stacked samples.
type TUIConfig struct {
	CellW int `yaml:"cell_w"`
	CellH int `yaml:"cell_h"`
}
