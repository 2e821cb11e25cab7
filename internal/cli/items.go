package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danielblac/tmech-invoice/internal/service"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage invoice line items",
	Long:  `Add, remove, update, and list the invoice line items.`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List line items",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := appInstance.Session.Canonical()
		money := appInstance.Formatter.Currency

		fmt.Printf("%-16s %-40s %14s %6s %16s\n", "ID", "Description", "Price", "Qty", "Subtotal")
		fmt.Println("-------------------------------------------------------------------------------------------------")
		for _, item := range rec.Items {
			fmt.Printf("%-16d %-40s %14s %6g %16s\n",
				item.ID,
				truncate(item.Description, 40),
				money(item.Price),
				item.Qty,
				money(service.LineTotal(item.Price, item.Qty)),
			)
		}
		fmt.Printf("\nSub-total: %s\n", money(service.Subtotal(rec.Items)))
		return nil
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a line item",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		session.Begin()
		id := session.AddItem()
		if len(args) > 0 {
			session.SetItemDescription(id, args[0])
		}
		if cmd.Flags().Changed("price") {
			v, _ := cmd.Flags().GetString("price")
			session.SetItemPrice(id, v)
		}
		if cmd.Flags().Changed("qty") {
			v, _ := cmd.Flags().GetString("qty")
			session.SetItemQty(id, v)
		}

		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		fmt.Printf("✓ Added line item %d\n", id)
		return nil
	},
}

var itemsRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a line item by id",
	Long:  `Remove a line item. The last remaining item cannot be removed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		before := len(session.Canonical().Items)

		session.Begin()
		session.RemoveItem(id)
		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		if len(session.Canonical().Items) == before {
			fmt.Println("Nothing removed (unknown id, or it is the last remaining item).")
			return nil
		}
		fmt.Printf("✓ Removed line item %d\n", id)
		return nil
	},
}

var itemsSetCmd = &cobra.Command{
	Use:   "set [id]",
	Short: "Update a line item's fields by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}
		if session.Canonical().FindItem(id) == nil {
			return fmt.Errorf("no line item with id %d", id)
		}

		session.Begin()
		changed := 0
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			session.SetItemDescription(id, v)
			changed++
		}
		if cmd.Flags().Changed("price") {
			v, _ := cmd.Flags().GetString("price")
			session.SetItemPrice(id, v)
			changed++
		}
		if cmd.Flags().Changed("qty") {
			v, _ := cmd.Flags().GetString("qty")
			session.SetItemQty(id, v)
			changed++
		}

		if changed == 0 {
			session.Cancel()
			return fmt.Errorf("no fields given; see 'tmech-invoice items set --help'")
		}

		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		fmt.Printf("✓ Updated line item %d\n", id)
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsRemoveCmd)
	itemsCmd.AddCommand(itemsSetCmd)

	itemsAddCmd.Flags().String("price", "0", "Unit price")
	itemsAddCmd.Flags().String("qty", "1", "Quantity")

	itemsSetCmd.Flags().String("description", "", "Item description")
	itemsSetCmd.Flags().String("price", "", "Unit price (non-numeric becomes 0)")
	itemsSetCmd.Flags().String("qty", "", "Quantity (non-numeric becomes 0)")
}
