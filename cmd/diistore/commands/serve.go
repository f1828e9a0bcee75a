package commands

import (
	"log/slog"
	"time"

	"diistore/internal/catalog"
	"diistore/internal/dashboard"
	"diistore/internal/server"
	"diistore/lib/serviceutil"
	libtelemetry "diistore/lib/telemetry"

	"github.com/spf13/cobra"
)

var servePort *int

func init() {
	servePort = serveCmd.Flags().Int("port", 0, "The port to listen on, overrides the config.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--port <port>]",
	Short: "Loads the dashboard and serves it as a JSON API until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := serviceutil.SignalContext(cmd.Context())
		defer cancel()

		if env.config.Telemetry.PerfStats {
			libtelemetry.InstrumentPerfStats(ctx, 30*time.Second)
		}

		other, err := catalog.LoadOtherProducts(env.config.OtherProductsPath)
		if err != nil {
			return err
		}

		d := dashboard.New(dashboard.Options{
			Catalog:       newCatalogClient(),
			Area:          newAreaFetcher(),
			OtherProducts: other,
			Payment:       env.config.Payment,
			Telemetry:     env.tel,
		})
		d.Mount(ctx)

		port := env.config.Port
		if *servePort != 0 {
			port = *servePort
		}

		srv := server.New(server.Options{
			Dashboard:   d,
			Payment:     env.config.Payment,
			AccessToken: env.config.AccessToken,
			Telemetry:   env.tel,
		})
		err = serviceutil.StartHttpServer(ctx, port, srv.Handler())
		if err != nil {
			return err
		}
		slog.Info("server stopped")
		return nil
	},
}
