package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Inspect farm wastes",
}

var productShowCmd = &cobra.Command{
	Use:   "show [farm-waste-id]",
	Short: "Print a farm waste with its units and total stock in base units",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("farm-waste-id: %w", err)
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := a.catalog.GetFarmWaste(cmd.Context(), id)
		if err != nil {
			return err
		}

		printFarmWaste(cmd.OutOrStdout(), view)
		return nil
	},
}

func init() {
	productCmd.AddCommand(productShowCmd)
}
