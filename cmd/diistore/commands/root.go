package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"diistore/internal/area"
	"diistore/internal/catalog"
	"diistore/internal/components/telemetry"
	"diistore/lib/configutil"
	"diistore/lib/restyutil"
	libtelemetry "diistore/lib/telemetry"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

var (
	configPath *string
	verbose    *bool
	dumpHttp   *string
)

// env is populated by the root command before any subcommand runs.
var env struct {
	config Config
	tel    telemetry.API
	dump   restyutil.Output
	otel   libtelemetry.Telemetry
}

var rootCmd = &cobra.Command{
	Use:           "diistore",
	Short:         "diistore serves and inspects the store dashboard: stock, products, coverage areas and payment.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		libtelemetry.InitSlog(*verbose)

		read := configutil.ReadRecursively[Config]
		if cmd.Flag("config").Changed {
			read = configutil.ReadConfig[Config]
		}
		cfg, err := read(*configPath, DefaultConfig())
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file found, using defaults", "path", *configPath)
		} else if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		env.config = cfg
		env.tel = telemetry.SlogAPI{}

		if *dumpHttp != "" {
			out, err := restyutil.NewFilesystemOutput(*dumpHttp)
			if err != nil {
				return fmt.Errorf("prepare http dump directory: %w", err)
			}
			env.dump = out
		}

		env.otel, err = libtelemetry.Setup(cmd.Context(), "diistore", cfg.Telemetry)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return env.otel.Shutdown(context.Background())
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file, searched for from the cwd upwards unless given. Overrides are read from <name>.local.<ext>.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	dumpHttp = rootCmd.PersistentFlags().String("dump-http", "", "Write every upstream request and response to this directory.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCatalogClient() catalog.Client {
	client := catalog.NewClient(catalog.ClientOptions{
		BaseUrl: env.config.ApiBaseUrl,
		Timeout: env.config.Timeout(),
	}, env.tel)
	restyutil.InstrumentClient(client.Client(), otel.Tracer("diistore/catalog"), env.dump)
	return client
}

func newAreaFetcher() area.TableFetcher {
	fetcher := area.NewTableFetcher(area.TableFetcherOptions{
		SourceUrl:        env.config.AreaSourceUrl,
		Timeout:          env.config.Timeout(),
		CloudflareBypass: env.config.CloudflareBypass,
	}, env.tel)
	restyutil.InstrumentClient(fetcher.Client(), otel.Tracer("diistore/area"), env.dump)
	return fetcher
}
