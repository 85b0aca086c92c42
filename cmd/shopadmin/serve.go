package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shopadmin/internal/apiclient"
	httpx "shopadmin/internal/http"
)

func newServeCmd() *cobra.Command {
	var skipProbe bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON gateway for the dashboard frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp()

			if !skipProbe {
				probeClient := apiclient.New(a.cfg.Backend.BaseURL, 5*time.Second)
				if err := httpx.WaitForBackend(cmd.Context(), probeClient, a.cfg.Server.ProbeMaxWait); err != nil {
					log.Warn().Err(err).Msg("backend probe gave up; starting anyway")
				}
			}

			r := httpx.NewRouter(httpx.RouterDependencies{
				Config:    a.cfg,
				Catalog:   a.catalog,
				Identity:  a.identity,
				Orders:    a.orders,
				Inventory: a.inventory,
				Dashboard: a.dashboard,
				Reports:   a.reports,
			})

			srv := &http.Server{
				Addr:         ":" + a.cfg.Server.Port,
				Handler:      r,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.Info().Msgf("shopadmin gateway listening on :%s", a.cfg.Server.Port)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
			log.Info().Msg("server stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipProbe, "skip-probe", false, "do not wait for the backend before serving")
	return cmd
}
