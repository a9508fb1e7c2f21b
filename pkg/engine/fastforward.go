package engine

import (
	"fmt"

	"github.com/parabolic/parabolic/pkg/platform"
)

// FastForward moves g, which must be in the state after d.Cycle cycles, to
// the state after target cycles. It returns the number of spin cycles it
// actually applied.
func FastForward(g *platform.Grid, d Detection, target int, strategy platform.Strategy) (int, error) {
	if !d.Periodic() {
		return 0, NewSimulationError(ErrNoPeriodFound,
			fmt.Sprintf("no repeated state within %d cycles", d.Cycle))
	}

	period := d.Period()
	if period < 1 {
		return 0, NewSimulationError(ErrDegeneratePeriod,
			fmt.Sprintf("period %d from cycles %d and %d", period, d.FirstSeen, d.Cycle)).
			WithDetail("cycle", d.Cycle).
			WithDetail("first_seen", d.FirstSeen)
	}

	if target < d.Cycle {
		return 0, NewSimulationError(ErrTargetBeforeDetection,
			fmt.Sprintf("target %d is before detection cycle %d", target, d.Cycle))
	}

	remaining := (target - d.Cycle) % period
	SpinN(g, strategy, remaining)
	return remaining, nil
}
