// Package engine drives the platform through spin cycles and fast-forwards
// to an arbitrarily large cycle count.
//
// # Spin cycles
//
// One spin cycle tilts the platform north, west, south and east, in that
// order. Because the platform has finitely many states, repeating spin
// cycles eventually revisits a state, after which the sequence is periodic.
//
// # Cycle detection
//
// Detect records the fingerprint of the platform after every cycle,
// starting with the untouched platform as cycle 0. The first fingerprint
// seen twice fixes the period:
//
//	period = Cycle - FirstSeen
//
// FastForward then applies only (target - Cycle) mod period further cycles,
// leaving the platform in the state it would reach after target cycles.
// StateAt answers the same question without spinning past the repeat: it
// restores the target state from the recorded fingerprints.
//
// # Simulator
//
// Simulator ties the pieces together for a run: the load after a single
// north tilt of a snapshot (part 1), and the load after TargetCycles spin
// cycles of the original platform (part 2).
//
//	sim, err := engine.NewSimulator(engine.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	report, err := sim.Run(ctx, grid)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("part1 = %d\npart2 = %d\n", report.Part1, report.Part2)
//
// # Error Handling
//
// Every failure is an *EngineError classified as input, simulation or
// config. Use errors.Is with the Err* sentinels to match a specific kind.
package engine
