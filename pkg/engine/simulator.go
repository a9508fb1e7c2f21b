package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parabolic/parabolic/pkg/platform"
	"github.com/parabolic/parabolic/pkg/telemetry"
)

const (
	// DefaultTargetCycles is the number of spin cycles part 2 asks about.
	DefaultTargetCycles = 1_000_000_000

	// DefaultMaxCycles caps the cycle search.
	DefaultMaxCycles = 100_000
)

// Options configures a Simulator.
type Options struct {
	// TargetCycles is the spin cycle count whose load is reported as part 2.
	TargetCycles int

	// MaxCycles caps the number of spin cycles spent searching for a period.
	MaxCycles int

	// Strategy selects the tilt algorithm.
	Strategy platform.Strategy
}

// DefaultOptions returns the options for the standard puzzle.
func DefaultOptions() Options {
	return Options{
		TargetCycles: DefaultTargetCycles,
		MaxCycles:    DefaultMaxCycles,
		Strategy:     platform.StrategyScan,
	}
}

// Report is the outcome of a simulation run.
type Report struct {
	RunID        string            `json:"run_id"`
	Dimension    int               `json:"dimension"`
	Strategy     platform.Strategy `json:"strategy"`
	TargetCycles int               `json:"target_cycles"`

	// Part1 is the load after a single north tilt.
	Part1 int `json:"part1"`

	// Part2 is the load after TargetCycles spin cycles.
	Part2 int `json:"part2"`

	Detection Detection `json:"detection"`
	Period    int       `json:"period"`

	// Remaining is the number of spin cycles applied after detection.
	Remaining int `json:"remaining"`

	Duration time.Duration `json:"duration_ns"`
}

// Simulator runs the tilt simulation on a grid.
type Simulator struct {
	opts Options
}

// NewSimulator validates opts and returns a simulator.
func NewSimulator(opts Options) (*Simulator, error) {
	if opts.TargetCycles < 0 {
		return nil, NewConfigError(fmt.Sprintf("target cycles must not be negative, got %d", opts.TargetCycles), nil)
	}
	if opts.MaxCycles < 1 {
		return nil, NewConfigError(fmt.Sprintf("max cycles must be positive, got %d", opts.MaxCycles), nil)
	}

	strategy, err := platform.ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, NewConfigError("invalid strategy", err)
	}
	opts.Strategy = strategy

	return &Simulator{opts: opts}, nil
}

// Options returns the validated options.
func (s *Simulator) Options() Options {
	return s.opts
}

// Run computes both loads. g is consumed: it is left in the state after
// TargetCycles spin cycles.
func (s *Simulator) Run(ctx context.Context, g *platform.Grid) (*Report, error) {
	report := &Report{
		RunID:        uuid.New().String(),
		Dimension:    g.Size(),
		Strategy:     s.opts.Strategy,
		TargetCycles: s.opts.TargetCycles,
	}

	op := telemetry.StartOperation(ctx, "simulation.run",
		telemetry.AttrRunID.String(report.RunID),
		telemetry.AttrDimension.Int(g.Size()),
		telemetry.AttrStrategy.String(string(s.opts.Strategy)),
		telemetry.AttrTargetCycles.Int(s.opts.TargetCycles),
	)
	logger := op.Logger.WithRunID(report.RunID)
	metrics := telemetry.MetricsFromContext(ctx)

	runCtx := telemetry.FromContext(op.Ctx).WithRunID(report.RunID).WithContext(op.Ctx)
	err := s.run(runCtx, logger, metrics, g, report)
	report.Duration = op.Timer.Duration()
	if err != nil {
		op.Span.SetAttributes(telemetry.AttrErrorClass.String(string(ClassOf(err))))
	}
	op.End(err)

	if err != nil {
		metrics.RecordError(string(ClassOf(err)))
		metrics.RecordRunCompleted("failed", report.Duration)
		logger.WithError(err).Error("Simulation failed")
		return nil, err
	}

	metrics.RecordRunCompleted("succeeded", report.Duration)
	logger.WithFields(map[string]interface{}{
		"part1":    report.Part1,
		"part2":    report.Part2,
		"duration": report.Duration.String(),
	}).Info("Simulation complete")

	return report, nil
}

func (s *Simulator) run(ctx context.Context, logger *telemetry.Logger, metrics *telemetry.Metrics, g *platform.Grid, report *Report) error {
	snapshot := g.Clone()
	s.opts.Strategy.Apply(snapshot, platform.North)
	metrics.RecordTilt(platform.North.String())
	report.Part1 = snapshot.Load()
	metrics.SetLoad("part1", report.Part1)

	logger.WithFields(map[string]interface{}{
		"dimension": g.Size(),
		"boulders":  g.Count(platform.Rolling),
		"part1":     report.Part1,
	}).Debug("North tilt applied to snapshot")

	detection, err := s.detect(ctx, g)
	if err != nil {
		return err
	}
	report.Detection = detection
	report.Period = detection.Period()

	switch {
	case detection.Periodic():
		remaining, err := s.fastForward(ctx, g, detection)
		if err != nil {
			return err
		}
		report.Remaining = remaining
	case detection.Cycle == s.opts.TargetCycles:
		// The search reached the target before any state repeated.
	default:
		return NewSimulationError(ErrNoPeriodFound,
			fmt.Sprintf("no repeated state within %d cycles (target %d)", detection.Cycle, s.opts.TargetCycles)).
			WithDetail("max_cycles", s.opts.MaxCycles)
	}

	report.Part2 = g.Load()
	metrics.SetLoad("part2", report.Part2)
	return nil
}

func (s *Simulator) detect(ctx context.Context, g *platform.Grid) (Detection, error) {
	limit := min(s.opts.MaxCycles, s.opts.TargetCycles)

	op := telemetry.StartOperation(ctx, "simulation.detect")
	detection, err := Detect(op.Ctx, g, s.opts.Strategy, limit)
	if err == nil {
		telemetry.AddEvent(op.Span, "cycle.search.finished",
			telemetry.AttrCycle.Int(detection.Cycle),
			telemetry.AttrFirstSeen.Int(detection.FirstSeen),
			telemetry.AttrPeriod.Int(detection.Period()),
		)
	}
	op.End(err)

	telemetry.MetricsFromContext(ctx).RecordSpinCycles(detection.Cycle, SpinDirectionNames()...)
	if err != nil {
		return detection, err
	}

	if detection.Periodic() {
		telemetry.MetricsFromContext(ctx).RecordDetection(detection.FirstSeen, detection.Period())
	}

	op.Logger.WithFields(map[string]interface{}{
		"outcome":    detection.Outcome.String(),
		"cycle":      detection.Cycle,
		"first_seen": detection.FirstSeen,
		"period":     detection.Period(),
		"elapsed":    op.Timer.Duration().String(),
	}).Debug("Cycle search finished")

	return detection, nil
}

func (s *Simulator) fastForward(ctx context.Context, g *platform.Grid, d Detection) (int, error) {
	op := telemetry.StartOperation(ctx, "simulation.fast_forward",
		telemetry.AttrPeriod.Int(d.Period()),
	)
	remaining, err := FastForward(g, d, s.opts.TargetCycles, s.opts.Strategy)
	if err == nil {
		telemetry.AddEvent(op.Span, "fast_forward.applied", telemetry.AttrRemaining.Int(remaining))
	}
	op.End(err)
	if err != nil {
		return 0, err
	}

	telemetry.MetricsFromContext(ctx).RecordSpinCycles(remaining, SpinDirectionNames()...)
	op.Logger.WithField("remaining", remaining).Debug("Fast-forward applied")

	return remaining, nil
}
