package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Compute a chart layout from a spec file",
		Long: `Compute a chart layout from a spec file.

The layout command takes a TOML chart spec and carves the canvas into
margins, caption band, axis label areas, and the plot interior. The output
is a layout.json file describing each region in pixels, plus the pixel
ranges the coordinate system was bound to.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Layout flags
	cmd.Flags().IntVar(&opts.Width, "width", 0, "canvas width override")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "canvas height override")

	return cmd
}

// runLayout loads the spec, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SpecPath = input
	opts.Logger = c.Logger

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}
	opts.OutputPath = outputPath

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Layout, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Inspect", "chartframe inspect "+outputPath)

	return nil
}
