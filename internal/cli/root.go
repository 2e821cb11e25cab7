package cli

import (
	"github.com/danielblac/tmech-invoice/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "tmech-invoice",
	Short: "An editable, printable invoice document",
	Long: `tmech-invoice renders an editable invoice document and prints it to PDF.

By default, running tmech-invoice without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}
