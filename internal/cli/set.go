package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit invoice fields",
	Long: `Edit scalar invoice fields and save.

Examples:
  tmech-invoice set --invoice-no TMECH0200 --due-date "20 Nov, 2025"
  tmech-invoice set --discount 5000
  tmech-invoice set --bill-to-name "FROSHTECH ACADEMY"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		session.Begin()

		changed := 0
		apply := func(flag string, set func(string)) {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				set(v)
				changed++
			}
		}

		apply("invoice-no", session.SetInvoiceNo)
		apply("invoice-date", session.SetInvoiceDate)
		apply("due-date", session.SetDueDate)
		apply("bill-to-name", session.SetBillToName)
		apply("bill-to-address", session.SetBillToAddress)
		apply("discount", session.SetDiscount)
		apply("delivery-fee", session.SetDeliveryFee)

		if changed == 0 {
			session.Cancel()
			return fmt.Errorf("no fields given; see 'tmech-invoice set --help'")
		}

		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		fmt.Printf("✓ Updated %d field(s) on invoice %s\n", changed, session.Canonical().InvoiceNo)
		return nil
	},
}

func init() {
	setCmd.Flags().String("invoice-no", "", "Invoice number")
	setCmd.Flags().String("invoice-date", "", "Invoice date label")
	setCmd.Flags().String("due-date", "", "Due date label")
	setCmd.Flags().String("bill-to-name", "", "Billed party name")
	setCmd.Flags().String("bill-to-address", "", "Billed party address")
	setCmd.Flags().String("discount", "", "Discount amount (non-numeric becomes 0)")
	setCmd.Flags().String("delivery-fee", "", "Delivery fee amount (non-numeric becomes 0)")
}
