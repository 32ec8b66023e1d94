package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapboard/internal/platform/tui"
)

var flagSwitches string

var emulateCmd = &cobra.Command{
	Use:   "emulate",
	Short: "Play on an emulated board in the terminal",
	Long: `Run the game on a simulated board drawn in the terminal.
Logs go to --log-file only, since the game uses the whole screen.

Controls:
  Space/W/Up  - Player 1 flap (KEY1)
  Enter/I     - Player 2 flap (KEY2)
  0-9         - Toggle switches SW0-SW9
  Ctrl+S      - Save a PNG screenshot
  ?           - More help
  Q           - Quit (KEY0)

Examples:
  flapboard emulate
  flapboard emulate --switches 0b100000000
  flapboard emulate --log-file flapboard.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runEmulate,
}

func init() {
	emulateCmd.Flags().StringVar(&flagSwitches, "switches", "0", "Initial switch word (decimal, 0x.., 0b..)")
}

func runEmulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	switches, err := parseSwitches(flagSwitches)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("emulate needs a terminal; try 'flapboard window'")
	}
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		if err := tui.CheckTerminal(cfg.TUI, w, h); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cfg, switches, logger)
}
