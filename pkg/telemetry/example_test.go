package telemetry_test

import (
	"context"
	"errors"
	"os"

	"github.com/parabolic/parabolic/pkg/telemetry"
)

func Example_basicSetup() {
	cfg := telemetry.DefaultConfig()
	cfg.ServiceVersion = "1.0.0"

	tel, err := telemetry.NewTelemetry(cfg)
	if err != nil {
		panic(err)
	}
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	logger := telemetry.FromContext(ctx)
	logger.Info("Application started")
}

func Example_structuredLogging() {
	cfg := telemetry.DefaultConfig()
	cfg.Logging.Format = "json"

	logger := telemetry.NewLoggerWithWriter(cfg.Logging, os.Stderr).NewComponentLogger("engine")
	logger = logger.WithRunID("0b8f6c1e").WithSource("input.txt")

	logger.Debug("Parsing grid")
	logger.WithField("part1", 136).Info("North tilt applied")
	logger.WithError(errors.New("no repeated state")).Error("Simulation failed")
}

func Example_operation() {
	cfg := telemetry.DefaultConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "none"

	tel, _ := telemetry.NewTelemetry(cfg)
	defer tel.Shutdown(context.Background())

	ctx := tel.WithContext(context.Background())

	op := telemetry.StartOperation(ctx, "simulation.detect",
		telemetry.AttrDimension.Int(10),
	)
	telemetry.AddEvent(op.Span, "cycle.search.finished",
		telemetry.AttrCycle.Int(10),
		telemetry.AttrFirstSeen.Int(3),
	)
	op.Logger.Debug("Cycle search finished")
	op.End(nil)
}

func Example_metricsServer() {
	cfg := telemetry.DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddress = "127.0.0.1:0"

	tel, _ := telemetry.NewTelemetry(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = tel.Metrics.StartMetricsServer(ctx, func(err error) {
		tel.Logger.WithError(err).Error("Metrics server failed")
	})

	tel.Metrics.RecordSpinCycles(13, "north", "west", "south", "east")
	tel.Metrics.RecordDetection(3, 7)
}
