package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapboard/internal/config"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <switches>",
	Short: "Show the settings a switch word selects",
	Long: `Decode a slide-switch register value into game settings.
The value may be decimal, hex (0x..), octal (0o..) or binary (0b..).

Examples:
  flapboard decode 0
  flapboard decode 0x3ff
  flapboard decode 0b0100010011`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

// parseSwitches parses a switch word. Bits above SW9 are accepted and
// ignored by the decoder.
func parseSwitches(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid switch value %q: %w", s, err)
	}
	return uint32(v), nil
}

// switchBits formats SW9..SW0 as a bit string.
func switchBits(switches uint32) string {
	var sb strings.Builder
	for n := config.NumSwitches - 1; n >= 0; n-- {
		if switches&(1<<n) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runDecode(cmd *cobra.Command, args []string) error {
	switches, err := parseSwitches(args[0])
	if err != nil {
		return err
	}
	cfg := config.Decode(switches)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Switches %#x (SW9..SW0 = %s)\n", switches, switchBits(switches))
	fmt.Fprintln(out)

	rows := [][3]string{
		{"Speed", fmt.Sprintf("%d px/tick", cfg.Speed), "SW0-SW1"},
		{"Gap height", fmt.Sprintf("%d px", cfg.GapHeight), "SW2-SW3"},
		{"Obstacles", fmt.Sprintf("%d, %d px apart", cfg.Obstacles, cfg.Spacing), "SW4"},
		{"Gravity", fmt.Sprintf("%.2f px/tick²", cfg.Gravity), "SW5"},
		{"Jump", fmt.Sprintf("%.1f px/tick", cfg.JumpImpulse), "SW6"},
		{"Bird radius", fmt.Sprintf("%d px", cfg.BirdRadius), "SW7"},
		{"Two players", onOff(cfg.TwoPlayer), "SW8"},
		{"Paused", onOff(cfg.Paused), "SW9"},
	}

	fmt.Fprintf(out, "  %-12s  %-18s  %s\n", "Setting", "Value", "Switch")
	fmt.Fprintf(out, "  %-12s  %-18s  %s\n", "-------", "-----", "------")
	for _, r := range rows {
		fmt.Fprintf(out, "  %-12s  %-18s  %s\n", r[0], r[1], r[2])
	}
	return nil
}
