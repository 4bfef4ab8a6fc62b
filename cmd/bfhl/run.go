package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"bfhl-hq/bfhl/pkg/cli"
	"bfhl-hq/bfhl/pkg/config"
	"bfhl-hq/bfhl/pkg/server"
	"bfhl-hq/bfhl/pkg/telemetry"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
	watch         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bfhl server",
	Long: `Start the bfhl HTTP server with the specified configuration.

The server answers POST and GET on the configured API paths (/bfhl and
/api/bfhl by default) and exposes /metrics, /health, /ready and /version.

Examples:
  # Start with defaults
  bfhl run

  # Start with a config file
  bfhl run --config /etc/bfhl/config.yaml

  # Override listen address
  bfhl run --listen 0.0.0.0:8080

  # Reload identity and classifier settings when the file changes
  bfhl run --config config.yaml --watch

  # Validate config without starting the server
  bfhl run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "reload the config file when it changes")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	config.SetConfig(cfg)

	out := cmd.OutOrStdout()

	tel, err := telemetry.New(&cfg.Telemetry, buildInfo(), out)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	slog.SetDefault(tel.Logger)

	if runFlags.dryRun {
		fmt.Fprintln(out, "✓ Configuration valid")
		return nil
	}

	srv, err := server.New(cfg, tel)
	if err != nil {
		return cli.NewCommandError("run", err)
	}

	ctx, stop := cli.SignalContext(cmd.Context())
	defer stop()

	if (runFlags.watch || cfg.Reload.Watch) && cfgFile != "" {
		go func() {
			if err := srv.WatchConfig(ctx, cfgFile); err != nil {
				tel.Logger.Error("configuration watcher failed", "error", err)
			}
		}()
	} else if runFlags.watch {
		tel.Logger.Warn("--watch ignored: no configuration file given")
	}

	tel.Logger.Info("bfhl starting",
		"version", Version,
		"config", cfgFile,
		"listen_address", cfg.Server.ListenAddress,
	)

	serveErr := srv.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		tel.Logger.Error("telemetry shutdown failed", "error", err)
	}

	if serveErr != nil {
		return cli.NewCommandError("run", serveErr)
	}
	return nil
}

// loadRunConfig loads the configuration and applies the run flag
// overrides. The result is validated after the overrides.
func loadRunConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	} else if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
