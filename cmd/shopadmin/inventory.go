package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shopadmin/internal/inventory"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Work with warehouse stock",
	}
	cmd.AddCommand(newInventoryListCmd(), newInventorySetQuantityCmd())
	return cmd
}

func newInventoryListCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			ctrl := inventory.NewController(a.inventory, inventory.ControllerOptions{
				PageSize:   a.cfg.Pages.Inventory,
				GuardStale: a.cfg.GuardStale,
			})
			items, pageInfo, err := runList(cmd, ctrl, flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{
					strconv.FormatInt(it.ID, 10),
					it.DisplayName(),
					it.WarehouseName(),
					strconv.Itoa(it.AvailableQuantity),
					strconv.Itoa(it.ReorderLevel),
					it.StockStatus(),
				})
			}
			printTable([]string{"ID", "PRODUCT", "WAREHOUSE", "AVAILABLE", "REORDER AT", "STATUS"}, rows)
			printPageInfo(pageInfo)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newInventorySetQuantityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-quantity <id> <quantity>",
		Short: "Set an inventory item's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid inventory id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 0 {
				return fmt.Errorf("quantity must be a non-negative number")
			}
			a := newApp()
			if err := a.inventory.SetQuantity(cmd.Context(), id, qty); err != nil {
				return err
			}
			fmt.Printf("inventory item %d quantity set to %d\n", id, qty)
			return nil
		},
	}
}
