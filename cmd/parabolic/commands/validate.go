package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
)

type validateOutput struct {
	Config    string                `json:"config"`
	Input     string                `json:"input,omitempty"`
	Dimension int                   `json:"dimension,omitempty"`
	Rolling   int                   `json:"rolling,omitempty"`
	Fixed     int                   `json:"fixed,omitempty"`
	Report    *platform.ParseReport `json:"report,omitempty"`
	Valid     bool                  `json:"valid"`
}

func newValidateCommand() *cobra.Command {
	var dimension int

	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Validate the configuration and an input platform",
		Long: `Validate the configuration file and, when an input is given, check that it
is a well-formed square platform.

The input is checked strictly: ragged rows, surplus rows and missing rows
are all reported, and the command fails if there are any.`,
		Example: `  # Validate the config only
  parabolic validate -c parabolic.yaml

  # Validate config and input
  parabolic validate -c parabolic.cue input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args, func(cfg *config.Config) {
				if cmd.Flags().Changed("dimension") {
					cfg.Input.Dimension = dimension
				}
			})
			if err != nil {
				return err
			}

			_, tel, err := startTelemetry(cmd, cfg, false)
			if err != nil {
				return err
			}
			defer tel.Shutdown(context.Background())
			logger := tel.Logger.NewComponentLogger("validate")

			out := validateOutput{Config: "ok", Valid: true}
			if configPath == "" {
				out.Config = "defaults"
			}

			var validationErr error
			if path := cfg.Input.Path; path != "" {
				out.Input = path

				opts := cfg.ParseOptions()
				opts.Strict = false
				g, report, err := engine.LoadPlatform(path, opts)
				if err != nil {
					return err
				}
				out.Dimension = g.Size()
				out.Rolling = g.Count(platform.Rolling)
				out.Fixed = g.Count(platform.Fixed)
				out.Report = &report

				if !report.Clean() {
					opts.Strict = true
					_, _, validationErr = engine.LoadPlatform(path, opts)
					if validationErr == nil {
						validationErr = engine.NewMalformedInputError(path, fmt.Errorf("input does not match the grid shape"))
					}
					out.Valid = false
				}
			}

			logger.WithFields(map[string]interface{}{
				"config": out.Config,
				"input":  out.Input,
				"valid":  out.Valid,
			}).Debug("Validation finished")

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
				return validationErr
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config: %s\n", out.Config)
			if out.Input != "" {
				fmt.Fprintf(w, "input: %s (%dx%d, %d rolling, %d fixed)\n",
					out.Input, out.Dimension, out.Dimension, out.Rolling, out.Fixed)
				if r := out.Report; r != nil && !r.Clean() {
					fmt.Fprintf(w, "  padded rows:    %d\n", r.Padded)
					fmt.Fprintf(w, "  truncated rows: %d\n", r.Truncated)
					fmt.Fprintf(w, "  dropped rows:   %d\n", r.Dropped)
					fmt.Fprintf(w, "  missing rows:   %d\n", r.Missing)
				}
			}
			return validationErr
		},
	}

	cmd.Flags().IntVar(&dimension, "dimension", 0, "grid side length; 0 infers it from the first line")

	return cmd
}
