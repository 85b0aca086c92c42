package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/catalog"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Work with the product catalog",
	}
	cmd.AddCommand(newProductsListCmd(), newProductsDeleteCmd(), newCategoriesListCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			ctrl := catalog.NewController(a.catalog, catalog.ControllerOptions{
				PageSize:   a.cfg.Pages.Products,
				GuardStale: a.cfg.GuardStale,
			})
			items, pageInfo, err := runList(cmd, ctrl, flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					p.MainCategory(),
					fmt.Sprintf("%.2f", p.EffectivePrice()),
					p.StockLabel(),
				})
			}
			printTable([]string{"ID", "NAME", "CATEGORY", "PRICE", "STOCK"}, rows)
			printPageInfo(pageInfo)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !confirm(fmt.Sprintf("delete product %s?", id), yes) {
				fmt.Println("aborted")
				return nil
			}
			a := newApp()
			if err := a.catalog.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted product %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			cats, pageInfo, err := a.catalog.ListCategories(cmd.Context(), page, size)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(cats))
			for _, c := range cats {
				parent := "-"
				if c.ParentID != nil {
					parent = fmt.Sprintf("%d", *c.ParentID)
				}
				rows = append(rows, []string{fmt.Sprintf("%d", c.ID), c.Name, c.Slug, parent})
			}
			printTable([]string{"ID", "NAME", "SLUG", "PARENT"}, rows)
			printPageInfo(pageInfo)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to load")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	return cmd
}
