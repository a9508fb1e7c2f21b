package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/parabolic/parabolic/pkg/config"
	"github.com/parabolic/parabolic/pkg/engine"
	"github.com/parabolic/parabolic/pkg/platform"
)

func newGenerateCommand() *cobra.Command {
	var (
		script  string
		size    int
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a platform from a Starlark script",
		Long: `Run a Starlark script that defines generate(size) and returns a list of
size strings, one per row. The result is checked strictly as a platform and
written to --output or standard output.`,
		Example: `  # Generate a 100x100 platform
  parabolic generate --script gen.star --size 100 --output input.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return engine.NewConfigError(fmt.Sprintf("size must be positive, got %d", size), nil)
			}

			content, err := os.ReadFile(script)
			if err != nil {
				return engine.NewSourceNotFoundError(script, err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			start := time.Now()
			rows, err := config.NewStarlarkGenerator(timeout).Generate(ctx, script, string(content), size)
			if err != nil {
				return engine.NewMalformedInputError(script, err)
			}

			text := strings.Join(rows, "\n") + "\n"
			g, _, err := engine.ParsePlatform(script, strings.NewReader(text), platform.ParseOptions{
				Dimension: size,
				Strict:    true,
			})
			if err != nil {
				return err
			}

			log.Debug().
				Str("script", script).
				Int("size", size).
				Int("rolling", g.Count(platform.Rolling)).
				Dur("elapsed", time.Since(start)).
				Msg("Platform generated")

			if output == "" || output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), g.String())
				return err
			}
			if err := os.WriteFile(output, []byte(g.String()), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			log.Info().Str("output", output).Int("size", size).Msg("Platform written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "Starlark generator script")
	cmd.Flags().IntVar(&size, "size", 100, "platform side length")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().DurationVar(&timeout, "timeout", config.DefaultGeneratorTimeout, "script execution timeout")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}
