package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
	"github.com/parabolic/parabolic/pkg/telemetry"
)

// simulationFlags override the input and simulation sections of the config.
type simulationFlags struct {
	dimension    int
	targetCycles int
	maxCycles    int
	strategy     string
	strict       bool
}

func (f *simulationFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.dimension, "dimension", 0, "grid side length; 0 infers it from the first line")
	cmd.Flags().IntVar(&f.targetCycles, "target", 0, "spin cycles for part 2")
	cmd.Flags().IntVar(&f.maxCycles, "max-cycles", 0, "maximum spin cycles spent searching for a period")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "tilt algorithm (scan, settle)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject ragged or wrongly sized input")
}

func (f *simulationFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dimension") {
		cfg.Input.Dimension = f.dimension
	}
	if flags.Changed("target") {
		cfg.Simulation.TargetCycles = f.targetCycles
	}
	if flags.Changed("max-cycles") {
		cfg.Simulation.MaxCycles = f.maxCycles
	}
	if flags.Changed("strategy") {
		cfg.Simulation.Strategy = f.strategy
	}
	if flags.Changed("strict") {
		cfg.Input.Strict = f.strict
	}
}

// loadConfig reads the --config file, applies the input argument, the
// global flags and override, and validates the result.
func loadConfig(cmd *cobra.Command, args []string, override func(*config.Config)) (*config.Config, error) {
	loader := config.NewLoader()

	cfg, err := loader.Load(configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if override != nil {
		override(cfg)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// requireInput returns the configured input path.
func requireInput(cfg *config.Config) (string, error) {
	if cfg.Input.Path == "" {
		return "", engine.NewConfigError("no input given: pass a path argument or set input.path", nil)
	}
	return cfg.Input.Path, nil
}

// startTelemetry builds telemetry from cfg and attaches it to the command
// context. Logs configured for stderr go to the command's error writer.
// Metrics are only collected when serveMetrics is set.
func startTelemetry(cmd *cobra.Command, cfg *config.Config, serveMetrics bool) (context.Context, *telemetry.Telemetry, error) {
	telCfg := cfg.TelemetryConfig(appVersion)

	metricsIgnored := telCfg.Metrics.Enabled && !serveMetrics
	if metricsIgnored {
		telCfg.Metrics.Enabled = false
	}

	tel, err := telemetry.NewTelemetry(telCfg)
	if err != nil {
		return nil, nil, engine.NewConfigError("invalid telemetry configuration", err)
	}
	if telCfg.Logging.Output == "stderr" {
		tel.Logger = telemetry.NewLoggerWithWriter(telCfg.Logging, cmd.ErrOrStderr())
	}
	if metricsIgnored {
		tel.Logger.WithField("command", cmd.Name()).
			Warn("Metrics are only served by the watch command; ignoring telemetry.metrics.enabled")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return tel.WithContext(ctx), tel, nil
}

// loadGrid reads the configured input and logs any lenient repairs.
func loadGrid(ctx context.Context, cfg *config.Config) (*platform.Grid, error) {
	path, err := requireInput(cfg)
	if err != nil {
		return nil, err
	}

	op := telemetry.StartOperation(ctx, "input.load", telemetry.AttrSource.String(path))
	g, report, err := engine.LoadPlatform(path, cfg.ParseOptions())
	op.End(err)
	if err != nil {
		return nil, err
	}

	logger := op.Logger.WithSource(path)
	if !report.Clean() {
		logger.WithFields(map[string]interface{}{
			"padded":    report.Padded,
			"truncated": report.Truncated,
			"dropped":   report.Dropped,
			"missing":   report.Missing,
		}).Warn("Input did not match the grid shape and was repaired")
	}
	logger.WithFields(map[string]interface{}{
		"dimension": g.Size(),
		"rows":      report.Rows,
		"elapsed":   op.Timer.Duration().String(),
	}).Debug("Grid loaded")

	return g, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
