package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Manage custom information lines",
	Long:  `Add, remove, update, and list the free-text custom information lines.`,
}

var infoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom information lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := appInstance.Session.Canonical()
		if len(rec.CustomInfo) == 0 {
			fmt.Println("No custom information lines")
			return nil
		}
		for i, line := range rec.CustomInfo {
			fmt.Printf("%3d  %s\n", i, line)
		}
		return nil
	},
}

var infoAddCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a custom information line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		session.Begin()
		session.AddCustomInfo()
		if len(args) > 0 {
			session.SetCustomInfo(len(session.Draft().CustomInfo)-1, args[0])
		}
		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		fmt.Println("✓ Added custom information line")
		return nil
	},
}

var infoRemoveCmd = &cobra.Command{
	Use:   "remove [position]",
	Short: "Remove a custom information line by position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}

		before := len(session.Canonical().CustomInfo)

		session.Begin()
		session.RemoveCustomInfo(i)
		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		if len(session.Canonical().CustomInfo) == before {
			fmt.Println("Nothing removed (position out of range).")
			return nil
		}
		fmt.Printf("✓ Removed custom information line %d\n", i)
		return nil
	},
}

var infoSetCmd = &cobra.Command{
	Use:   "set [position] [text]",
	Short: "Replace the text of a custom information line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session := appInstance.Session

		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}
		if i < 0 || i >= len(session.Canonical().CustomInfo) {
			return fmt.Errorf("position %d out of range", i)
		}

		session.Begin()
		session.SetCustomInfo(i, args[1])
		if err := session.Commit(ctx); err != nil {
			session.Cancel()
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		fmt.Printf("✓ Updated custom information line %d\n", i)
		return nil
	},
}

func init() {
	infoCmd.AddCommand(infoListCmd)
	infoCmd.AddCommand(infoAddCmd)
	infoCmd.AddCommand(infoRemoveCmd)
	infoCmd.AddCommand(infoSetCmd)
}
