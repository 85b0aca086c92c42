package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/identity"
)

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Work with the customer directory",
	}
	cmd.AddCommand(newCustomersListCmd(), newCustomersDeleteCmd())
	return cmd
}

func newCustomersListCmd() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()
			ctrl := identity.NewController(a.identity, identity.ControllerOptions{
				PageSize:   a.cfg.Pages.Customers,
				GuardStale: a.cfg.GuardStale,
			})
			items, pageInfo, err := runList(cmd, ctrl, flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(items))
			for _, u := range items {
				rows = append(rows, []string{
					u.ID,
					u.FullName(),
					u.Email,
					u.PhoneNumber,
					u.MembershipLevel(),
				})
			}
			printTable([]string{"ID", "NAME", "EMAIL", "PHONE", "TIER"}, rows)
			printPageInfo(pageInfo)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newCustomersDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !confirm(fmt.Sprintf("delete customer %s?", id), yes) {
				fmt.Println("aborted")
				return nil
			}
			a := newApp()
			if err := a.identity.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted customer %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
