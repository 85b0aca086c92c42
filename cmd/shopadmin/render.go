package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shopadmin/internal/envelope"
	"shopadmin/internal/list"
)

// listFlags are the flags shared by every list subcommand.
type listFlags struct {
	page      int
	size      int
	search    string
	status    string
	dateRange string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page to load")
	cmd.Flags().IntVar(&f.size, "size", 0, "page size (0 uses the resource default)")
	cmd.Flags().StringVar(&f.search, "search", "", "filter rows by search term")
	cmd.Flags().StringVar(&f.status, "status", "", "filter rows by status")
	cmd.Flags().StringVar(&f.dateRange, "range", "", "filter rows by date range: today, week or month")
}

// runList drives one controller load and returns the filtered rows.
// A load failure is not a hard error when stale rows remain visible.
func runList[T any](cmd *cobra.Command, ctrl *list.Controller[T], f listFlags) ([]T, envelope.PageInfo, error) {
	ctrl.SetPage(f.page)
	if f.size > 0 {
		ctrl.SetPageSize(f.size)
	}
	ctrl.SetSearch(f.search)
	ctrl.SetStatusFilter(f.status)
	ctrl.SetDateRange(f.dateRange)

	ctrl.Load(cmd.Context())

	if msg := ctrl.Err(); msg != "" {
		if len(ctrl.Items()) == 0 {
			return nil, ctrl.PageInfo(), fmt.Errorf("%s", msg)
		}
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	return ctrl.Filtered(), ctrl.PageInfo(), nil
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func printPageInfo(pi envelope.PageInfo) {
	fmt.Printf("\npage %d/%d  (%d items total)\n", pi.Page, pi.TotalPages, pi.TotalItems)
}

// confirm asks before a destructive action unless --yes was given.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
