package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/catalog"
	"shopadmin/internal/config"
	"shopadmin/internal/dashboard"
	"shopadmin/internal/identity"
	"shopadmin/internal/inventory"
	"shopadmin/internal/orders"
)

// app bundles the configured services shared by the subcommands.
type app struct {
	cfg       config.Cfg
	catalog   *catalog.Service
	identity  *identity.Service
	orders    *orders.Service
	inventory *inventory.Service
	dashboard *dashboard.Service
	reports   *dashboard.ReportService
}

func newApp() *app {
	cfg := config.Load()
	client := apiclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	catalogSvc := catalog.NewService(client, cfg.Backend.ProductPrefix)
	identitySvc := identity.NewService(client, cfg.Backend.IdentityPrefix, identity.StaticToken(cfg.Backend.IdentityToken))
	orderSvc := orders.NewService(client, cfg.Backend.OrderPrefix)
	inventorySvc := inventory.NewService(client, cfg.Backend.InventoryPrefix)

	return &app{
		cfg:       cfg,
		catalog:   catalogSvc,
		identity:  identitySvc,
		orders:    orderSvc,
		inventory: inventorySvc,
		dashboard: dashboard.NewService(orderSvc, catalogSvc),
		reports:   dashboard.NewReportService(orderSvc, inventorySvc),
	}
}

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "shopadmin",
		Short: "Admin gateway for the shop backend services",
		Long: `shopadmin talks to the product, order, inventory and identity
services, normalizes their uneven response formats and exposes the result
as a CLI or as a JSON gateway for the dashboard frontend.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(),
		newProductsCmd(),
		newCustomersCmd(),
		newOrdersCmd(),
		newInventoryCmd(),
		newDashboardCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
