package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielblac/tmech-invoice/internal/domain"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in starter invoice",
	Long:  `Discard the saved invoice and restore the built-in starter record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will discard the saved invoice and restore the starter record. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		ctx := context.Background()
		if err := appInstance.Store.Save(ctx, domain.DefaultInvoice()); err != nil {
			return fmt.Errorf("failed to reset invoice: %w", err)
		}

		fmt.Println("Invoice restored to the starter record.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
