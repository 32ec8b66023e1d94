package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapboard/internal/registry"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List available boards",
	Long:  `Shows the boards 'flapboard run --board' can open.`,
	Args:  cobra.NoArgs,
	Run:   runBoards,
}

func runBoards(cmd *cobra.Command, args []string) {
	boards := registry.List()
	out := cmd.OutOrStdout()

	if len(boards) == 0 {
		fmt.Fprintln(out, "No boards available.")
		return
	}

	fmt.Fprintln(out, "Available boards:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range boards {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range boards {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flapboard run --board <name>' to use a board.")
}
