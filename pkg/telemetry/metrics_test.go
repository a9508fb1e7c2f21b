package telemetry

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	cfg := DefaultConfig().Metrics
	cfg.Enabled = true

	m, err := NewMetrics(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return m
}

func TestMetrics_SpinCycles(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordTilt("north")
	m.RecordSpinCycles(13, "north", "west", "south", "east")
	m.RecordSpinCycles(0, "north")

	if got := testutil.ToFloat64(m.spinCycles); got != 13 {
		t.Errorf("Expected 13 spin cycles, got %v", got)
	}
	if got := testutil.ToFloat64(m.tilts.WithLabelValues("north")); got != 14 {
		t.Errorf("Expected 14 north tilts, got %v", got)
	}
	if got := testutil.ToFloat64(m.tilts.WithLabelValues("east")); got != 13 {
		t.Errorf("Expected 13 east tilts, got %v", got)
	}
}

func TestMetrics_RunsAndErrors(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordRunCompleted("succeeded", 10*time.Millisecond)
	m.RecordRunCompleted("failed", time.Millisecond)
	m.RecordError("simulation")
	m.RecordError("")

	expected := `
# HELP parabolic_errors_by_class_total Total number of errors by error class
# TYPE parabolic_errors_by_class_total counter
parabolic_errors_by_class_total{class="simulation"} 1
parabolic_errors_by_class_total{class="unknown"} 1
# HELP parabolic_runs_total Total number of simulation runs by status
# TYPE parabolic_runs_total counter
parabolic_runs_total{status="failed"} 1
parabolic_runs_total{status="succeeded"} 1
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"parabolic_runs_total", "parabolic_errors_by_class_total"); err != nil {
		t.Error(err)
	}
}

func TestMetrics_DetectionAndLoad(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordDetection(3, 7)
	m.SetLoad("part1", 136)
	m.SetLoad("part2", 64)

	if got := testutil.ToFloat64(m.detectedPeriod); got != 7 {
		t.Errorf("Expected period 7, got %v", got)
	}
	if got := testutil.ToFloat64(m.firstSeenCycle); got != 3 {
		t.Errorf("Expected first seen 3, got %v", got)
	}
	if got := testutil.ToFloat64(m.load.WithLabelValues("part2")); got != 64 {
		t.Errorf("Expected part2 load 64, got %v", got)
	}
}

func TestMetrics_Disabled(t *testing.T) {
	m, err := NewMetrics(MetricsConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// None of these may panic.
	m.RecordTilt("north")
	m.RecordSpinCycles(5, "north")
	m.RecordDetection(1, 2)
	m.SetLoad("part1", 1)
	m.RecordError("input")
	m.RecordRunCompleted("succeeded", time.Second)

	if m.Registry() != nil {
		t.Error("Expected no registry when disabled")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("Expected 404 from a disabled handler, got %d", rec.Code)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics(t)
	m.RecordSpinCycles(2, "north")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "parabolic_spin_cycles_total 2") {
		t.Errorf("Expected spin cycles in output, got:\n%s", rec.Body.String())
	}
}
