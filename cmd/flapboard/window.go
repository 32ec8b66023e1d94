package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapboard/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play on an emulated board in a desktop window",
	Long: `Run the game on a simulated board shown in a desktop window, with the
displays and switches in a strip below the playfield.

Controls:
  Space/W/Up  - Player 1 flap (KEY1)
  Enter/I     - Player 2 flap (KEY2)
  0-9         - Toggle switches SW0-SW9
  Q/Esc       - Quit (KEY0)

Examples:
  flapboard window
  flapboard window --switches 0x100 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagSwitches, "switches", "0", "Initial switch word (decimal, 0x.., 0b..)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	switches, err := parseSwitches(flagSwitches)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return window.Run(cfg, switches, logger)
}
