package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
)

func newRunCommand() *cobra.Command {
	var flags simulationFlags

	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Compute the north beam load for both puzzle parts",
		Long: `Load a platform and compute the load on the north support beams:

  part1: after tilting the platform north once
  part2: after the target number of spin cycles (north, west, south, east)

The input path comes from the argument or from input.path in the config.
Use "-" to read the platform from standard input.`,
		Example: `  # Solve the puzzle input
  parabolic run input.txt

  # Use the iterative tilt and a smaller target
  parabolic run input.txt --strategy settle --target 1000

  # Infer the size from the input and print a JSON report
  parabolic run input.txt --dimension 0 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, func(cfg *config.Config) {
				flags.apply(cmd, cfg)
			})
			if err != nil {
				return err
			}

			ctx, tel, err := startTelemetry(cmd, cfg, false)
			if err != nil {
				return err
			}
			defer tel.Shutdown(context.Background())

			report, err := simulate(ctx, cfg)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}

	flags.bind(cmd)

	return cmd
}

// simulate loads the configured grid and runs the simulator on it.
func simulate(ctx context.Context, cfg *config.Config) (*engine.Report, error) {
	g, err := loadGrid(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sim, err := engine.NewSimulator(cfg.SimulationOptions())
	if err != nil {
		return nil, err
	}

	return sim.Run(ctx, g)
}

func printReport(w io.Writer, report *engine.Report) error {
	if jsonOutput {
		return writeJSON(w, report)
	}
	_, err := fmt.Fprintf(w, "part1 = %d\npart2 = %d\n", report.Part1, report.Part2)
	return err
}
