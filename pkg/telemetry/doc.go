// Package telemetry provides logging, tracing and metrics for parabolic.
//
// Structured logging uses zerolog, tracing uses OpenTelemetry and metrics
// are exposed through a Prometheus registry. A Telemetry value bundles the
// three and travels in a context.Context:
//
//	cfg := telemetry.DefaultConfig()
//	tel, err := telemetry.NewTelemetry(cfg)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	ctx = tel.WithContext(ctx)
//
// Code that does work opens an operation, which carries a span, a logger
// with trace identifiers and a timer:
//
//	op := telemetry.StartOperation(ctx, "simulation.detect",
//	    telemetry.AttrDimension.Int(g.Size()))
//	defer op.End(err)
//
// Without telemetry in the context, StartOperation still works: logging is
// discarded, the span is a no-op and MetricsFromContext returns a collector
// that records nothing.
//
// # Logging
//
// Logs go to stderr by default so that stdout carries only results. Levels
// are trace, debug, info, warn, error and fatal.
//
// # Tracing
//
// Supported exporters:
//
//   - "otlp": OTLP over gRPC to TracingConfig.Endpoint
//   - "stdout": pretty-printed spans on stdout
//   - "none": spans are sampled but not exported
//
// # Metrics
//
// With metrics enabled, the following are registered under the configured
// namespace:
//
//   - parabolic_runs_total{status}
//   - parabolic_run_duration_seconds
//   - parabolic_spin_cycles_total
//   - parabolic_tilts_total{direction}
//   - parabolic_detected_period
//   - parabolic_first_seen_cycle
//   - parabolic_load{part}
//   - parabolic_errors_by_class_total{class}
//
// StartMetricsServer serves them over HTTP until its context is cancelled.
package telemetry
