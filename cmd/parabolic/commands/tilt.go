package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
	"github.com/parabolic/parabolic/pkg/telemetry"
)

type tiltOutput struct {
	Direction string   `json:"direction,omitempty"`
	Cycles    int      `json:"cycles,omitempty"`
	Grid      []string `json:"grid"`
	Load      int      `json:"load"`
}

func newTiltCommand() *cobra.Command {
	var (
		direction string
		cycles    int
		strategy  string
		dimension int
	)

	cmd := &cobra.Command{
		Use:   "tilt [input]",
		Short: "Tilt a platform and print the result",
		Long: `Tilt the platform once in a direction, or apply a number of spin cycles,
then print the resulting platform and its north beam load. Large cycle counts
are answered from the first repeated state, within simulation.max_cycles.`,
		Example: `  # Tilt north once
  parabolic tilt input.txt --direction north

  # Apply three spin cycles
  parabolic tilt input.txt --cycles 3

  # Platform after a billion spin cycles
  parabolic tilt input.txt --cycles 1000000000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := platform.ParseDirection(direction)
			if err != nil {
				return engine.NewConfigError("invalid direction", err)
			}
			if cycles < 0 {
				return engine.NewConfigError(fmt.Sprintf("cycles must not be negative, got %d", cycles), nil)
			}

			cfg, err := loadConfig(cmd, args, func(cfg *config.Config) {
				if cmd.Flags().Changed("strategy") {
					cfg.Simulation.Strategy = strategy
				}
				if cmd.Flags().Changed("dimension") {
					cfg.Input.Dimension = dimension
				}
			})
			if err != nil {
				return err
			}

			ctx, tel, err := startTelemetry(cmd, cfg, false)
			if err != nil {
				return err
			}
			defer tel.Shutdown(context.Background())

			g, err := loadGrid(ctx, cfg)
			if err != nil {
				return err
			}

			strat := platform.Strategy(cfg.Simulation.Strategy)
			metrics := telemetry.MetricsFromContext(ctx)
			out := tiltOutput{}
			if cycles > 0 {
				state, d, err := engine.StateAt(ctx, g, strat, cycles, cfg.Simulation.MaxCycles)
				metrics.RecordSpinCycles(d.Cycle, engine.SpinDirectionNames()...)
				if err != nil {
					return err
				}
				g = state
				out.Cycles = cycles
			} else {
				strat.Apply(g, dir)
				metrics.RecordTilt(dir.String())
				out.Direction = dir.String()
			}
			out.Load = g.Load()

			if jsonOutput {
				out.Grid = strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
				return writeJSON(cmd.OutOrStdout(), out)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%sload = %d\n", g, out.Load)
			return err
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "north", "tilt direction (north, west, south, east)")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "apply this many spin cycles instead of a single tilt")
	cmd.Flags().StringVar(&strategy, "strategy", "", "tilt algorithm (scan, settle)")
	cmd.Flags().IntVar(&dimension, "dimension", 0, "grid side length; 0 infers it from the first line")

	return cmd
}
