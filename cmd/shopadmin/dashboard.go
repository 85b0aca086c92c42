package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shopadmin/internal/orders"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard aggregates",
	}
	cmd.AddCommand(newSummaryCmd(), newTopProductsCmd(), newRecentOrdersCmd(), newReportsCmd())
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the sales summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			sum, err := a.dashboard.Summary(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Total sales:      %.2f\n", sum.TotalSales)
			fmt.Printf("Total orders:     %d\n", sum.TotalOrders)
			fmt.Printf("Total customers:  %d\n", sum.TotalCustomers)
			fmt.Printf("Avg order value:  %.2f\n", sum.AverageOrderValue)
			fmt.Printf("Target progress:  %.1f%% of %.0f\n\n", sum.PercentAchieved, sum.TargetSales)

			rows := make([][]string, 0, len(sum.MonthlySales))
			for _, m := range sum.MonthlySales {
				rows = append(rows, []string{m.Month, fmt.Sprintf("%.2f", m.Sales), strconv.Itoa(m.Orders)})
			}
			printTable([]string{"MONTH", "SALES", "ORDERS"}, rows)
			return nil
		},
	}
}

func newTopProductsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top-products",
		Short: "Show the top selling products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			top, err := a.dashboard.TopProducts(cmd.Context(), n)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(top))
			for _, p := range top {
				rows = append(rows, []string{
					p.Name,
					p.MainCategory(),
					strconv.Itoa(p.SalesCount),
					fmt.Sprintf("%.2f", p.SalesAmount),
				})
			}
			printTable([]string{"PRODUCT", "CATEGORY", "SOLD", "AMOUNT"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of products to show")
	return cmd
}

func newRecentOrdersCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "recent-orders",
		Short: "Show the most recent orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			recent, err := a.dashboard.RecentOrders(cmd.Context(), n)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(recent))
			for _, o := range recent {
				rows = append(rows, []string{
					o.ID,
					fmt.Sprintf("%.2f", o.TotalAmount),
					orders.DisplayStatus(o.Status),
					o.CreatedAt,
				})
			}
			printTable([]string{"ID", "TOTAL", "STATUS", "CREATED"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of orders to show")
	return cmd
}

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the sales or inventory report",
	}

	var page, size int

	sales := &cobra.Command{
		Use:   "sales",
		Short: "Show the sales report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if size == 0 {
				size = a.cfg.Pages.Orders
			}
			items, sum, err := a.reports.SalesReport(cmd.Context(), page, size)
			if err != nil {
				return err
			}

			fmt.Printf("Total sales:     %.2f\n", sum.TotalSales)
			fmt.Printf("Total orders:    %d\n", sum.TotalOrders)
			fmt.Printf("Avg order value: %.2f\n", sum.AverageOrderValue)
			fmt.Printf("Pending orders:  %d\n\n", sum.PendingOrders)

			rows := make([][]string, 0, len(items))
			for _, o := range items {
				rows = append(rows, []string{o.ID, fmt.Sprintf("%.2f", o.TotalAmount), orders.DisplayStatus(o.Status), o.CreatedAt})
			}
			printTable([]string{"ID", "TOTAL", "STATUS", "CREATED"}, rows)
			return nil
		},
	}

	stock := &cobra.Command{
		Use:   "inventory",
		Short: "Show the inventory report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			if size == 0 {
				size = a.cfg.Pages.Inventory
			}
			items, sum, err := a.reports.InventoryReport(cmd.Context(), page, size)
			if err != nil {
				return err
			}

			fmt.Printf("Items:        %d\n", sum.TotalItems)
			fmt.Printf("Available:    %d\n", sum.TotalAvailable)
			fmt.Printf("In stock:     %d\n", sum.InStock)
			fmt.Printf("Low stock:    %d\n", sum.LowStock)
			fmt.Printf("Out of stock: %d\n\n", sum.OutOfStock)

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{strconv.FormatInt(it.ID, 10), it.DisplayName(), strconv.Itoa(it.AvailableQuantity), it.StockStatus()})
			}
			printTable([]string{"ID", "PRODUCT", "AVAILABLE", "STATUS"}, rows)
			return nil
		},
	}

	for _, c := range []*cobra.Command{sales, stock} {
		c.Flags().IntVar(&page, "page", 1, "page to load")
		c.Flags().IntVar(&size, "size", 0, "page size (0 uses the resource default)")
		cmd.AddCommand(c)
	}
	return cmd
}
