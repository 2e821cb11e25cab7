package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielblac/tmech-invoice/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface for tmech-invoice.`,
	Run:   launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) {
	if err := tui.Run(appInstance); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
