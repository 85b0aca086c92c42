package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/orders"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work with orders",
	}
	cmd.AddCommand(newOrdersListCmd(), newOrderStatusCmd(), newOrderPaymentCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			ctrl := orders.NewController(a.orders, orders.ControllerOptions{
				PageSize:   a.cfg.Pages.Orders,
				GuardStale: a.cfg.GuardStale,
			})
			items, pageInfo, err := runList(cmd, ctrl, flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, o := range items {
				rows = append(rows, []string{
					o.ID,
					o.UserID,
					fmt.Sprintf("%.2f", o.TotalAmount),
					orders.DisplayStatus(o.Status),
					o.PaymentMethod(),
					o.CreatedAt,
				})
			}
			printTable([]string{"ID", "CUSTOMER", "TOTAL", "STATUS", "PAYMENT", "CREATED"}, rows)
			printPageInfo(pageInfo)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if err := a.orders.SetStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("order %s status set to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newOrderPaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-payment-status <id> <paymentStatus>",
		Short: "Update an order's payment status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if err := a.orders.SetPaymentStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("order %s payment status set to %s\n", args[0], args[1])
			return nil
		},
	}
}
