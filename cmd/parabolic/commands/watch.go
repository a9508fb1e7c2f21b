package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/telemetry"
	"github.com/parabolic/parabolic/pkg/watch"
)

func newWatchCommand() *cobra.Command {
	var (
		flags         simulationFlags
		serveMetrics  bool
		metricsListen string
		debounce      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [input]",
		Short: "Re-run the simulation whenever the input or config changes",
		Long: `Run the simulation, then watch the input file and the config file and run
it again after every change. Failed runs are logged and watching continues.

With --metrics, Prometheus metrics are served for as long as the command runs.`,
		Example: `  # Watch an input file
  parabolic watch input.txt

  # Watch with a config file and expose metrics
  parabolic watch -c parabolic.yaml --metrics --metrics-listen :9100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := func(cfg *config.Config) {
				flags.apply(cmd, cfg)
				if serveMetrics {
					cfg.Telemetry.Metrics.Enabled = true
				}
				if cmd.Flags().Changed("metrics-listen") {
					cfg.Telemetry.Metrics.ListenAddress = metricsListen
				}
			}

			cfg, err := loadConfig(cmd, args, override)
			if err != nil {
				return err
			}
			input, err := requireInput(cfg)
			if err != nil {
				return err
			}
			if input == engine.StdinSource {
				return engine.NewConfigError("cannot watch standard input", nil)
			}

			ctx, tel, err := startTelemetry(cmd, cfg, true)
			if err != nil {
				return err
			}
			defer tel.Shutdown(context.Background())

			if err := tel.Metrics.StartMetricsServer(ctx, func(err error) {
				tel.Logger.WithError(err).Error("Metrics server failed")
			}); err != nil {
				return err
			}
			if cfg.Telemetry.Metrics.Enabled {
				log.Info().
					Str("address", cfg.Telemetry.Metrics.ListenAddress).
					Str("path", cfg.Telemetry.Metrics.Path).
					Msg("Serving metrics")
			}

			runOnce := func(ctx context.Context) error {
				// Re-read the config so edits to it take effect. Telemetry
				// keeps its startup settings.
				current, err := loadConfig(cmd, args, override)
				if err != nil {
					return err
				}
				report, err := simulate(ctx, current)
				if err != nil {
					return err
				}
				return printReport(cmd.OutOrStdout(), report)
			}

			if err := runOnce(ctx); err != nil {
				telemetry.FromContext(ctx).WithError(err).Error("Initial run failed")
			}

			files := []string{input}
			if configPath != "" {
				files = append(files, configPath)
			}

			w := watch.NewWatcher(log.Logger, debounce)
			return w.Watch(ctx, files, runOnce)
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&serveMetrics, "metrics", false, "serve Prometheus metrics")
	cmd.Flags().StringVar(&metricsListen, "metrics-listen", "", "metrics listen address (default from config)")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait for changes to settle before re-running")

	return cmd
}
