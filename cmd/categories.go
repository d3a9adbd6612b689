package cmd

import (
	"fmt"

	"inventory-tracker/core/config"
	"inventory-tracker/core/inventory"

	"github.com/spf13/cobra"
)

// categoriesCmd prints the allowed category set.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the allowed item categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		for _, label := range inventory.NewCategories(cfg.Inventory.Categories).List() {
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restock threshold: %d\n", cfg.Inventory.RestockThreshold)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(categoriesCmd)
}
