package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [path]",
	Short: "Print the invoice to PDF",
	Long: `Render the saved invoice document to a PDF file.

Without arguments the file is written to the configured output directory
as <invoice no>.pdf. Unsaved edits never appear in the output; printing
always reflects the last committed record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := appInstance.Session.Canonical()

		if len(args) == 1 {
			data, err := appInstance.PDF.Generate(rec)
			if err != nil {
				return fmt.Errorf("failed to render PDF: %w", err)
			}
			path := args[0]
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}
			fmt.Printf("✓ Invoice written to %s\n", path)
			return nil
		}

		path, err := appInstance.PDF.WriteFile(rec, appInstance.Config.Storage.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("✓ Invoice written to %s\n", path)
		return nil
	},
}
