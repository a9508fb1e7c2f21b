package engine

import (
	"context"
	"fmt"

	"github.com/parabolic/parabolic/pkg/platform"
)

// StateAt returns the grid after target spin cycles from g. Once a state
// repeats, the answer is read back from the recorded history instead of
// spinning further. The search is capped at maxCycles; g is left in the state
// at the end of the search.
func StateAt(ctx context.Context, g *platform.Grid, strategy platform.Strategy, target, maxCycles int) (*platform.Grid, Detection, error) {
	if target < 0 {
		return nil, Detection{}, NewConfigError(fmt.Sprintf("target cycles must not be negative, got %d", target), nil)
	}

	d, history, err := search(ctx, g, strategy, min(maxCycles, target))
	if err != nil {
		return nil, d, err
	}

	if !d.Periodic() {
		if d.Cycle == target {
			return g.Clone(), d, nil
		}
		return nil, d, NewSimulationError(ErrNoPeriodFound,
			fmt.Sprintf("no repeated state within %d cycles (target %d)", d.Cycle, target)).
			WithDetail("max_cycles", maxCycles)
	}

	i := d.FirstSeen + (target-d.FirstSeen)%d.Period()
	if i >= history.Len() {
		return nil, d, NewSimulationError(ErrDegeneratePeriod,
			fmt.Sprintf("state %d is outside the %d recorded cycles", i, history.Len()))
	}

	state, err := platform.FromFingerprint(history.At(i))
	if err != nil {
		return nil, d, fmt.Errorf("failed to restore cycle %d: %w", i, err)
	}
	return state, d, nil
}
