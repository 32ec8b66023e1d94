// flapboard runs a one- or two-player flappy bird game on an FPGA board
// with a memory-mapped frame buffer, push buttons, slide switches and
// seven-segment displays, or on an emulated board.
//
// Usage:
//
//	flapboard run                - Play on the hardware board through /dev/mem
//	flapboard emulate            - Play on an emulated board in the terminal
//	flapboard window             - Play on an emulated board in a desktop window
//	flapboard decode <switches>  - Show the settings a switch word selects
//	flapboard boards             - List available boards
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Board configuration YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapboard/internal/config"

	// Import boards to register them
	_ "github.com/vovakirdan/flapboard/internal/hw/devmem"
	_ "github.com/vovakirdan/flapboard/internal/hw/simboard"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapboard",
	Short: "Flappy bird for an FPGA board",
	Long: `flapboard is a one- or two-player flappy bird game for an FPGA board.
Push buttons flap, the slide switches select speed, gap, obstacles,
physics, bird size, two-player mode and pause, and the seven-segment
displays show each player's high score.

Available commands:
  run      - Play on the hardware board
  emulate  - Play on an emulated board in the terminal
  window   - Play on an emulated board in a desktop window
  decode   - Show what a switch setting selects
  boards   - List available boards

Examples:
  sudo flapboard run
  flapboard emulate --switches 0b100000000
  flapboard window --seed 42
  flapboard decode 0x3ff`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(emulateCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(boardsCmd)
}

// loadConfig loads the board configuration and applies the global flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.BoardConfig, error) {
	cfg, err := config.LoadBoard(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		if flagFPS <= 0 {
			return cfg, fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}
