package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for simulation runs.
type Metrics struct {
	config MetricsConfig

	// Run metrics
	runsTotal   *prometheus.CounterVec
	runDuration prometheus.Histogram

	// Simulation metrics
	spinCycles     prometheus.Counter
	tilts          *prometheus.CounterVec
	detectedPeriod prometheus.Gauge
	firstSeenCycle prometheus.Gauge
	load           *prometheus.GaugeVec

	// Error metrics
	errorsByClass *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	buckets := cfg.DefaultHistogramBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of simulation runs by status",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of simulation runs in seconds",
				Buckets:   buckets,
			},
		),

		spinCycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "spin_cycles_total",
				Help:      "Total number of spin cycles applied",
			},
		),
		tilts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tilts_total",
				Help:      "Total number of tilts applied by direction",
			},
			[]string{"direction"},
		),
		detectedPeriod: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "detected_period",
				Help:      "Period of the most recently detected cycle",
			},
		),
		firstSeenCycle: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "first_seen_cycle",
				Help:      "Cycle at which the most recently detected period starts",
			},
		),
		load: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "load",
				Help:      "Most recent load on the north beams by puzzle part",
			},
			[]string{"part"},
		),

		errorsByClass: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_by_class_total",
				Help:      "Total number of errors by error class",
			},
			[]string{"class"},
		),
	}

	registry.MustRegister(
		m.runsTotal,
		m.runDuration,
		m.spinCycles,
		m.tilts,
		m.detectedPeriod,
		m.firstSeenCycle,
		m.load,
		m.errorsByClass,
	)

	return m, nil
}

// RecordRunCompleted records a finished run with its status and duration.
func (m *Metrics) RecordRunCompleted(status string, duration time.Duration) {
	if m.runsTotal == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(duration.Seconds())
}

// RecordTilt records a single tilt.
func (m *Metrics) RecordTilt(direction string) {
	if m.tilts == nil {
		return
	}
	m.tilts.WithLabelValues(direction).Inc()
}

// RecordSpinCycles records n spin cycles. Each spin cycle tilts once in
// every direction listed.
func (m *Metrics) RecordSpinCycles(n int, directions ...string) {
	if m.spinCycles == nil || n <= 0 {
		return
	}
	m.spinCycles.Add(float64(n))
	for _, d := range directions {
		m.tilts.WithLabelValues(d).Add(float64(n))
	}
}

// RecordDetection records the start and length of a detected period.
func (m *Metrics) RecordDetection(firstSeen, period int) {
	if m.detectedPeriod == nil {
		return
	}
	m.firstSeenCycle.Set(float64(firstSeen))
	m.detectedPeriod.Set(float64(period))
}

// SetLoad records the load computed for a puzzle part.
func (m *Metrics) SetLoad(part string, load int) {
	if m.load == nil {
		return
	}
	m.load.WithLabelValues(part).Set(float64(load))
}

// RecordError records an error by class.
func (m *Metrics) RecordError(errorClass string) {
	if m.errorsByClass == nil {
		return
	}
	if errorClass == "" {
		errorClass = "unknown"
	}
	m.errorsByClass.WithLabelValues(errorClass).Inc()
}

// Timer provides a convenient way to time operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry returns the registry metrics are registered on, or nil when
// metrics are disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// StartMetricsServer serves metrics until ctx is cancelled. Serve errors
// are passed to onError, which may be nil.
func (m *Metrics) StartMetricsServer(ctx context.Context, onError func(error)) error {
	if !m.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())

	server := &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && onError != nil {
			onError(err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	return nil
}
