package engine

import (
	"context"
	"fmt"

	"github.com/parabolic/parabolic/pkg/platform"
)

// Outcome is the result kind of a cycle search.
type Outcome int

const (
	// OutcomeNoPeriodFound means the search hit its cycle cap without a repeat.
	OutcomeNoPeriodFound Outcome = iota

	// OutcomePeriodic means a repeated state was found.
	OutcomePeriodic
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePeriodic:
		return "periodic"
	case OutcomeNoPeriodFound:
		return "no_period_found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Detection is the result of Detect.
type Detection struct {
	// Outcome says whether a period was found.
	Outcome Outcome `json:"outcome"`

	// Cycle is the number of spin cycles applied. When periodic, the grid
	// after Cycle cycles equals the grid after FirstSeen cycles.
	Cycle int `json:"cycle"`

	// FirstSeen is the earlier cycle with the same state. Only meaningful
	// when periodic.
	FirstSeen int `json:"first_seen"`
}

// Periodic reports whether a repeated state was found.
func (d Detection) Periodic() bool {
	return d.Outcome == OutcomePeriodic
}

// Period returns Cycle - FirstSeen, or 0 when no period was found.
func (d Detection) Period() int {
	if !d.Periodic() {
		return 0
	}
	return d.Cycle - d.FirstSeen
}

// Detect spins g until its state repeats or maxCycles cycles have been
// applied. g is left in the state after Detection.Cycle cycles.
func Detect(ctx context.Context, g *platform.Grid, strategy platform.Strategy, maxCycles int) (Detection, error) {
	d, _, err := search(ctx, g, strategy, maxCycles)
	return d, err
}

// search runs the cycle search and returns the history of distinct states.
// The i-th recorded fingerprint is the state after i cycles.
func search(ctx context.Context, g *platform.Grid, strategy platform.Strategy, maxCycles int) (Detection, *History, error) {
	history := NewHistory()
	history.Record(g.Fingerprint(), 0)

	for cycle := 1; cycle <= maxCycles; cycle++ {
		if err := ctx.Err(); err != nil {
			return Detection{Outcome: OutcomeNoPeriodFound, Cycle: cycle - 1}, history, err
		}

		Spin(g, strategy)

		fp := g.Fingerprint()
		if firstSeen, ok := history.Lookup(fp); ok {
			return Detection{Outcome: OutcomePeriodic, Cycle: cycle, FirstSeen: firstSeen}, history, nil
		}
		history.Record(fp, cycle)
	}

	return Detection{Outcome: OutcomeNoPeriodFound, Cycle: max(maxCycles, 0)}, history, nil
}
